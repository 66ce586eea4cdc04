package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/limbo/rehab/internal/client"
	"github.com/limbo/rehab/internal/recovery"
	"github.com/limbo/rehab/internal/tracker"
	"github.com/limbo/rehab/pkg/cleanup"
	"github.com/limbo/rehab/pkg/config"
	"github.com/limbo/rehab/pkg/kvstore"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	app     *application
)

// application holds what every command needs once configuration is loaded.
type application struct {
	playerID uuid.UUID
	api      *client.Client
	protocol *recovery.Service
	logger   *slog.Logger
	in       *bufio.Reader
	out      io.Writer
}

func newApplication(playerID uuid.UUID, api *client.Client, store kvstore.Store, logger *slog.Logger, in io.Reader, out io.Writer) *application {
	return &application{
		playerID: playerID,
		api:      api,
		protocol: recovery.NewService(api, api, tracker.New(store), logger),
		logger:   logger,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// prompt prints label and reads one answer, lowercased and trimmed. Closed input reads as "q".
func (a *application) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(a.out)
			return "q", nil
		}
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}

var rootCmd = &cobra.Command{
	Use:   "rehab",
	Short: "Injury recovery protocol for athletes",
	Long: `Rehab walks you from "something hurts" to a daily recovery protocol.

QUICK START:

  $ rehab triage Knee        # Pick your injury and start its protocol
  $ rehab today              # See today's exercises and your streak
  $ rehab complete <task-id> # Mark an exercise done
  $ rehab progress 60        # Record how far along you feel
  $ rehab resolve            # Close the protocol once you are healed

PROTOCOL DAYS:

  A protocol day runs from 05:00 to 05:00 local time. An exercise done at
  02:00 still counts for the previous day. Finishing every exercise of a
  protocol day adds one to your streak.

CONFIGURATION:

  REHAB_API_URL     API base url (default http://127.0.0.1:8080/api/v1)
  REHAB_TOKEN       bearer token issued for your player
  REHAB_PLAYER_ID   your player id
  REHAB_DATA_DIR    local state directory (default ~/.local/share/rehab)
  REHAB_TIMEOUT     request timeout (default 10s)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		cfg, err := config.LoadClient()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		playerID, err := uuid.Parse(cfg.PlayerID)
		if err != nil {
			return fmt.Errorf("REHAB_PLAYER_ID must be a uuid: %w", err)
		}
		store, err := kvstore.OpenBadger(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("failed to open local store: %w", err)
		}
		cleanup.Register(&cleanup.Job{Name: "local store", F: store.Close})

		api := client.New(cfg.APIURL, cfg.Token, cfg.Timeout, client.WithLogger(logger))
		app = newApplication(playerID, api, store, logger, cmd.InOrStdin(), cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests and state changes to stderr")
}
