package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func runCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	args = append(args,
		"--config", filepath.Join(dir, "missing.toml"),
		"--logfile", filepath.Join(dir, "magicpad.log"))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func stringValues(res gjson.Result) []string {
	var out []string
	for _, item := range res.Array() {
		out = append(out, item.String())
	}
	return out
}

func TestConvertAndCat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(input, []byte("**Hi** there\r\nred::warm:: bogus::day::\n"), 0o644))

	stdout, stderr, err := runCmd(t, "convert", input)
	require.NoError(t, err)
	output := filepath.Join(dir, "notes.ntp")
	require.Contains(t, stdout, "Saved "+output)
	require.Contains(t, stderr, "Invalid Color: 'bogus' is not a valid color.")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "Hi there\nwarm bogus::day::\n", gjson.GetBytes(data, "text").String())
	require.Equal(t, []string{"1.0", "1.2"}, stringValues(gjson.GetBytes(data, "tags.bold_style")))
	require.Equal(t, []string{"2.0", "2.4"}, stringValues(gjson.GetBytes(data, "tags.dynamic_color_red")))

	stdout, _, err = runCmd(t, "cat", output)
	require.NoError(t, err)
	require.Contains(t, stdout, "Hi there")
	require.Contains(t, stdout, "warm bogus::day::")
}

func TestConvert_OutputFlag(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "styled.ntp")
	require.NoError(t, os.WriteFile(input, []byte("//soft//"), 0o644))

	_, _, err := runCmd(t, "convert", input, "-o", output)
	require.NoError(t, err)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "soft", gjson.GetBytes(data, "text").String())
}

func TestConvert_MissingInput(t *testing.T) {
	_, _, err := runCmd(t, "convert", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestCat_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ntp")
	require.NoError(t, os.WriteFile(path, []byte(`{"text": 5}`), 0o644))
	_, _, err := runCmd(t, "cat", path)
	require.Error(t, err)
}
