package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/limbo/rehab/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	httputil.WriteErrorResponse(rec, http.StatusConflict, "player already has an active injury", errors.New("duplicate"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":409,"message":"player already has an active injury","details":"duplicate"}`, rec.Body.String())
	assert.Equal(t, "player already has an active injury", httputil.ReadErrorMessage(rec.Body))
}

func TestReadErrorMessage(t *testing.T) {
	testCases := []struct {
		Desc string
		Body string
		Want string
	}{
		{Desc: "error response", Body: `{"code":404,"message":"not found"}`, Want: "not found"},
		{Desc: "plain text", Body: "bad gateway\n", Want: "bad gateway"},
		{Desc: "json without message", Body: `{"code":500}`, Want: `{"code":500}`},
		{Desc: "empty", Body: "", Want: "no details"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Want, httputil.ReadErrorMessage(strings.NewReader(tc.Body)))
		})
	}
}

func TestDecodeJSONBody(t *testing.T) {
	type body struct {
		Confirm bool `json:"confirm"`
	}
	testCases := []struct {
		Desc  string
		Body  string
		Want  bool
		Error bool
	}{
		{Desc: "valid", Body: `{"confirm":true}`, Want: true},
		{Desc: "empty", Body: "  ", Error: true},
		{Desc: "malformed", Body: `{"confirm":`, Error: true},
		{Desc: "too large", Body: `{"confirm":true,"pad":"` + strings.Repeat("x", 70<<10) + `"}`, Error: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.Body))
			var got body
			err := httputil.DecodeJSONBody(r, &got)
			if tc.Error {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Want, got.Confirm)
		})
	}
}
