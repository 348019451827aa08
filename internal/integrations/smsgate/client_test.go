package smsgate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"international untouched", "+38761123456", "+38761123456"},
		{"foreign international untouched", "+4915112345678", "+4915112345678"},
		{"local with leading zero", "061123456", "+38761123456"},
		{"local without leading zero", "61123456", "+38761123456"},
		{"spaces removed", " 061 123 456 ", "+38761123456"},
		{"spaces in international", "+387 61 123 456", "+38761123456"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhoneNumber(tt.phone))
		})
	}
}

func TestClientSend(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody string
	var gotUser, gotPass string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		require.NoError(t, r.ParseForm())
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(MessageResponse{SID: "SM123", Status: "queued"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "AC42", "secret", "+38761000000", 5*time.Second, nopLogger{})

	err := c.Send(context.Background(), "061123456", "Poštovani")
	require.NoError(t, err)

	assert.Equal(t, "/2010-04-01/Accounts/AC42/Messages.json", gotPath)
	assert.Equal(t, "AC42", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.Equal(t, "+38761123456", gotTo)
	assert.Equal(t, "+38761000000", gotFrom)
	assert.Equal(t, "Poštovani", gotBody)
}

func TestClientSendErrors(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		c := NewClient("http://localhost", "", "", "", time.Second, nopLogger{})
		err := c.Send(context.Background(), "061123456", "hi")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("empty phone", func(t *testing.T) {
		c := NewClient("http://localhost", "AC42", "secret", "+38761000000", time.Second, nopLogger{})
		err := c.Send(context.Background(), "  ", "hi")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("gateway failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"code": 21211}`, http.StatusBadRequest)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "AC42", "secret", "+38761000000", time.Second, nopLogger{})
		err := c.Send(context.Background(), "061123456", "hi")
		assert.ErrorIs(t, err, ErrInvalidResponse)
	})
}
