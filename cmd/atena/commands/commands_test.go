package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"

	"github.com/crimson-sun/atena/internal/sjis"
)

func writeSJIS(t *testing.T, content string) string {
	t.Helper()
	raw, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(content))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "batch.csv")
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

const sampleExport = `"abc123",1.2.3.4,6881,"2023/01/28 04:03:17",host1,"au"
"def456",5.6.7.8,443,"2023/02/01 12:00:00",host2,"ソフトバンク"
short,row`

func TestCountsCommand(t *testing.T) {
	input := writeSJIS(t, sampleExport)
	out, err := run(t, NewCountsCommand(),
		"--input", input, "--category", "X", "--product-code", "P001")
	require.NoError(t, err)
	assert.Contains(t, out, "KDDI")
	assert.Contains(t, out, "ソフトバンク")
	assert.Contains(t, out, "2件") // totals footer
}

func TestCountsCommandNoInput(t *testing.T) {
	_, err := run(t, NewCountsCommand())
	require.ErrorIs(t, err, ErrNoInput)
}

func TestPreviewCommandFilters(t *testing.T) {
	input := writeSJIS(t, sampleExport)
	limit := 100
	out, err := run(t, NewPreviewCommand(&limit),
		"--input", input, "--product-code", "P001", "--isp", "KDDI")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3.4")
	assert.NotContains(t, out, "5.6.7.8")
	assert.Contains(t, out, "表示: 1件 / 全1件")
}

func TestPreviewCommandBadDate(t *testing.T) {
	input := writeSJIS(t, sampleExport)
	limit := 100
	_, err := run(t, NewPreviewCommand(&limit),
		"--input", input, "--from", "01-28-2023")
	require.Error(t, err)
}

func TestExportCommandWritesShiftJIS(t *testing.T) {
	input := writeSJIS(t, sampleExport)
	outPath := filepath.Join(t.TempDir(), "letter.csv")
	providersFile := ""

	_, err := run(t, NewExportCommand(&providersFile),
		"--input", input, "--product-code", "P001",
		"--isp", "KDDI", "--target", "KDDI", "--out", outPath)
	require.NoError(t, err)

	text, err := sjis.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(text, "\r\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "KDDI株式会社 御中")
	assert.Contains(t, lines[1], "PN00001")
}

func TestExportCommandWithVIPN(t *testing.T) {
	input := writeSJIS(t, sampleExport)
	outPath := filepath.Join(t.TempDir(), "letter.csv")
	providersFile := ""

	_, err := run(t, NewExportCommand(&providersFile),
		"--input", input, "--target", "KDDI", "--out", outPath, "--with-vipn")
	require.NoError(t, err)

	text, err := sjis.ReadFile(filepath.Join(filepath.Dir(outPath), "letter_vipn.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "VIPN,"))
}

func TestExportCommandNoTarget(t *testing.T) {
	providersFile := ""
	_, err := run(t, NewExportCommand(&providersFile), "--input", "x.csv")
	require.ErrorIs(t, err, ErrNoTarget)
}

func TestReconcileCommand(t *testing.T) {
	input := writeSJIS(t, sampleExport)
	outPath := filepath.Join(t.TempDir(), "vipn.csv")

	_, err := run(t, NewReconcileCommand(),
		"--input", input, "--out", outPath)
	require.NoError(t, err)

	text, err := sjis.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(text, "\r\n")
	require.Len(t, lines, 3)
	assert.Regexp(t, `^V[0-9A-F]{8},`, lines[1])
}

func TestProvidersCommand(t *testing.T) {
	providersFile := ""
	out, err := run(t, NewProvidersCommand(&providersFile))
	require.NoError(t, err)
	assert.Contains(t, out, "KDDI株式会社")
	assert.Contains(t, out, "楽天モバイル")
}

func TestProvidersCommandCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "master.yaml")
	doc := "providers:\n  - key: K\n    fullName: K株式会社\n    postalCode: '1'\n    address: a\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := run(t, NewProvidersCommand(&path))
	require.NoError(t, err)
	assert.Contains(t, out, "K株式会社")
	assert.NotContains(t, out, "KDDI株式会社")
}

func TestVIPNPathFor(t *testing.T) {
	assert.Equal(t, "letter_vipn.csv", vipnPathFor("letter.csv"))
	assert.Equal(t, "out.vipn.csv", vipnPathFor("out"))
}
