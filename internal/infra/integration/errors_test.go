package integration

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckStatus(t *testing.T) {
	ok := &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(""))}
	assert.NoError(t, CheckStatus("instantly", ok))

	long := strings.Repeat("x", 2000)
	bad := &http.Response{StatusCode: http.StatusBadGateway, Body: io.NopCloser(strings.NewReader(long))}
	err := CheckStatus("instantly", bad)

	statusErr, isStatus := err.(*StatusError)
	require.True(t, isStatus)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Len(t, statusErr.Body, 512)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "***", MaskKey("short"))
	assert.Equal(t, "abcd...wxyz", MaskKey("abcdefghijklmnopqrstuvwxyz"))
}
