package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/itish2003/smartcity/commands"
	"github/itish2003/smartcity/config"
	"github/itish2003/smartcity/models"
	"github/itish2003/smartcity/services"
)

type cannedGenerator struct {
	prompts []string
	answer  string
}

func (g *cannedGenerator) Generate(_ context.Context, prompt string, _ models.DecodingParams) ([]string, error) {
	g.prompts = append(g.prompts, prompt)
	return []string{g.answer}, nil
}

func factory(gen services.TextGenerator) commands.GeneratorFactory {
	return func(context.Context, *config.Config) (services.TextGenerator, error) {
		return gen, nil
	}
}

func run(t *testing.T, gen services.TextGenerator, args ...string) (string, error) {
	t.Helper()

	cmd := commands.NewRootCmd(factory(gen))
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	// Point at a file that does not exist so a developer's .env is never read.
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))

	err := cmd.Execute()
	return buf.String(), err
}

func setGeminiEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SMARTCITY_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SMARTCITY_TEMPERATURE", "")
	t.Setenv("SMARTCITY_MAX_NEW_TOKENS", "")
}

func TestAsk_JoinsArgsAndPrintsAnswer(t *testing.T) {
	setGeminiEnv(t)
	gen := &cannedGenerator{answer: "AQI stands for Air Quality Index."}

	out, err := run(t, gen, "ask", "What", "is", "AQI?")
	require.NoError(t, err)
	assert.Equal(t, "AQI stands for Air Quality Index.\n", out)
	assert.Equal(t, []string{"What is AQI?"}, gen.prompts)
}

func TestAsk_BlankPrintsWarning(t *testing.T) {
	setGeminiEnv(t)
	gen := &cannedGenerator{answer: "unused"}

	out, err := run(t, gen, "ask", "  ")
	require.NoError(t, err)
	assert.Equal(t, services.WarningMessage+"\n", out)
	assert.Empty(t, gen.prompts)
}

func TestAsk_MissingKey(t *testing.T) {
	setGeminiEnv(t)
	t.Setenv("GEMINI_API_KEY", "")

	_, err := run(t, &cannedGenerator{}, "ask", "hello")
	require.ErrorIs(t, err, config.ErrMissingCredential)
}

func TestReport_Stdout(t *testing.T) {
	out, err := run(t, nil, "report")
	require.NoError(t, err)
	assert.Equal(t, services.ReportText+"\n", out)
}

func TestReport_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	_, err := run(t, nil, "report", "-o", path)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, services.ReportText+"\n", string(got))
}

func TestReport_PDFWithoutLicense(t *testing.T) {
	t.Setenv("UNIDOC_LICENSE_KEY", "")
	path := filepath.Join(t.TempDir(), "report.pdf")

	_, err := run(t, nil, "report", "--pdf", "-o", path)
	require.ErrorIs(t, err, services.ErrPDFUnavailable)
	assert.NoFileExists(t, path)
}

func TestChart_JSON(t *testing.T) {
	out, err := run(t, nil, "chart", "energy")
	require.NoError(t, err)

	var fig models.Figure
	require.NoError(t, json.Unmarshal([]byte(out), &fig))
	assert.Equal(t, "Energy Usage (MW)", fig.Title)
	assert.Equal(t, []float64{300, 320, 310, 290, 330, 340, 325}, fig.Series.Values)
}

func TestChart_HTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aqi.html")

	_, err := run(t, nil, "chart", "aqi", "--html", path)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), "AQI Over Time")
}

func TestChart_Unknown(t *testing.T) {
	_, err := run(t, nil, "chart", "water")
	require.ErrorIs(t, err, services.ErrUnknownChart)
}
