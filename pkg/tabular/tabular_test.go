package tabular

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	t.Parallel()
	tb, err := ReadCSV(strings.NewReader("\uFEFF State , Crop,Area\nPunjab,rice,10\nBihar,wheat\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"State", "Crop", "Area"}, tb.Header)
	require.Len(t, tb.Rows, 2)
	assert.Equal(t, "", Cell(tb.Rows[1], tb.Index("Area")))
	assert.Equal(t, "10", Cell(tb.Rows[0], 2))
	assert.Equal(t, "", Cell(tb.Rows[0], -1))
}

func TestReadCSV_Empty(t *testing.T) {
	t.Parallel()
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoTable)
}

func TestRenameIfAbsent(t *testing.T) {
	t.Parallel()
	tb := &Table{Header: []string{"Area", "Production", "Production_q"}}
	tb.RenameIfAbsent("Area", "Area_ha")
	tb.RenameIfAbsent("Production", "Production_q")
	assert.Equal(t, []string{"Area_ha", "Production", "Production_q"}, tb.Header)
}

func TestFindAny(t *testing.T) {
	t.Parallel()
	tb := &Table{Header: []string{"Crop Name", "price-rs_per quintal"}}
	assert.Equal(t, 1, tb.FindAny("price_rs_per_quintal"))
	assert.Equal(t, 0, tb.FindAny("crop", "cropname"))
	assert.Equal(t, -1, tb.FindAny("cost"))
}

func TestReadHTML(t *testing.T) {
	t.Parallel()
	page := `<html><body><p>Mandi bulletin</p>
<table>
 <thead><tr><th>Crop</th><th>price_rs_per_quintal</th><th>cost_rs_per_hectare</th></tr></thead>
 <tbody>
  <tr><td> Rice </td><td>2300</td><td>64000</td></tr>
  <tr><td>Onion</td><td>1800</td><td></td></tr>
 </tbody>
</table>
<table><tr><td>ignored</td></tr></table>
</body></html>`
	tb, err := ReadHTML(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, []string{"Crop", "price_rs_per_quintal", "cost_rs_per_hectare"}, tb.Header)
	require.Len(t, tb.Rows, 2)
	assert.Equal(t, "Rice", tb.Rows[0][0])
	assert.Equal(t, "", tb.Rows[1][2])
}

func TestReadHTML_NoTable(t *testing.T) {
	t.Parallel()
	_, err := ReadHTML(strings.NewReader("<p>nothing</p>"))
	assert.ErrorIs(t, err, ErrNoTable)
}

func TestReadFile_ByExtension(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "y.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a,b\n1,2\n"), 0o644))
	tb, err := ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tb.Header)

	xlsxPath := filepath.Join(dir, "y.xlsx")
	x := excelize.NewFile()
	require.NoError(t, x.SetSheetRow("Sheet1", "A1", &[]any{"State", "Crop"}))
	require.NoError(t, x.SetSheetRow("Sheet1", "A2", &[]any{"Punjab", "rice"}))
	require.NoError(t, x.SaveAs(xlsxPath))
	require.NoError(t, x.Close())

	tb, err = ReadFile(xlsxPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"State", "Crop"}, tb.Header)
	assert.Equal(t, [][]string{{"Punjab", "rice"}}, tb.Rows)

	_, err = ReadFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, err = ReadFile(filepath.Join(dir, "missing.xlsx"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
