package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorLine(t *testing.T) {
	var buf bytes.Buffer
	ErrorLine(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "error:")
	assert.Contains(t, buf.String(), "boom\n")
}

func TestExportAndSummaryLines(t *testing.T) {
	var buf bytes.Buffer
	ExportLine(&buf, "login.feature", "out.db")
	SummaryLine(&buf, 1, 2, 5)

	assert.Contains(t, buf.String(), "exported  login.feature")
	assert.Contains(t, buf.String(), "out.db")
	assert.Contains(t, buf.String(), "1 features, 2 scenarios, 5 steps\n")
}
