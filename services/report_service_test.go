package services_test

import (
	"bytes"
	"testing"

	"github/itish2003/smartcity/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_ByteStable(t *testing.T) {
	svc := services.NewReportService("")

	want := "✅ Energy Consumption reduced by 5%\n" +
		"✅ AQI improved from 80 → 70\n" +
		"✅ Water usage reduced by 10%\n" +
		"✅ Smart transport usage increased by 15%"

	assert.Equal(t, want, svc.Report())
	assert.Equal(t, []byte(svc.Report()), []byte(svc.Report()))
}

func TestWriteText(t *testing.T) {
	svc := services.NewReportService("")

	var buf bytes.Buffer
	require.NoError(t, svc.WriteText(&buf))
	assert.Equal(t, services.ReportText+"\n", buf.String())
}

func TestWritePDF_DisabledWithoutLicense(t *testing.T) {
	svc := services.NewReportService("")
	assert.False(t, svc.PDFEnabled())

	var buf bytes.Buffer
	err := svc.WritePDF(&buf)
	require.ErrorIs(t, err, services.ErrPDFUnavailable)
	assert.Zero(t, buf.Len())
}
