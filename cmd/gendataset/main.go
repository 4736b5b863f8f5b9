// Command gendataset writes a synthetic district crop-yield dataset in the
// layout the server loads from DISTRICT_DATA_PATH.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"agrosense/pkg/logging"
)

var (
	outPath string
	seed    int64
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gendataset",
		Short: "Generate a synthetic district crop-yield dataset",
		Long:  `Generate states x districts x crops x years (2015-2022) yield rows as CSV or, for a .xlsx output path, an Excel workbook.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(outPath, seed)
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", filepath.Join("data", "district_crop_yield.csv"), "Output file (.csv or .xlsx)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed; equal seeds give identical files")
	return cmd
}

func run(path string, seed int64) error {
	log, err := logging.New("info", "console")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	rows := generate(seed)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		err = writeXLSX(path, rows)
	default:
		var f *os.File
		if f, err = os.Create(path); err != nil {
			return err
		}
		err = writeCSV(f, rows)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Info("dataset written", zap.String("path", path), zap.Int("rows", len(rows)))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
