package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strconv"

	"github.com/xuri/excelize/v2"

	"agrosense/entities"
)

const (
	firstYear        = 2015
	lastYear         = 2022
	cropsPerDistrict = 8
	sheetName        = "district_crop_yield"
)

var header = []string{"State", "District", "Year", "Season", "Crop", "Area_ha", "Production_q", "Yield_q_per_ha"}

// generate is deterministic for a given seed.
func generate(seed int64) []entities.YieldRecord {
	rng := rand.New(rand.NewSource(seed))
	var rows []entities.YieldRecord
	for _, sd := range statesToDistricts {
		for _, district := range sd.Districts {
			picked := sample(rng, crops, cropsPerDistrict)
			for year := firstYear; year <= lastYear; year++ {
				for _, crop := range picked {
					seasons := cropSeasons[crop]
					season := seasons[rng.Intn(len(seasons))]
					y := yieldFor(rng, sd.State, crop)
					area := areaFor(rng, crop)
					prod := math.Max(1000, math.Floor(area*y))
					yr := year
					rows = append(rows, entities.YieldRecord{
						State:       sd.State,
						District:    district,
						Year:        &yr,
						Season:      season,
						Crop:        crop,
						AreaHa:      area,
						ProductionQ: &prod,
						YieldQPerHa: &y,
					})
				}
			}
		}
	}
	return rows
}

func sample(rng *rand.Rand, from []string, k int) []string {
	if k > len(from) {
		k = len(from)
	}
	idx := rng.Perm(len(from))[:k]
	out := make([]string, k)
	for i, j := range idx {
		out[i] = from[j]
	}
	return out
}

// yieldFor applies the state bump and up to 12% noise, floored at 5 q/ha.
func yieldFor(rng *rand.Rand, state, crop string) float64 {
	base, ok := cropBase[crop]
	if !ok {
		base = 18
	}
	base += stateBumps[state][crop]
	noise := -0.12 + rng.Float64()*0.24
	y := math.Max(5.0, base*(1+noise))
	return math.Round(y*10) / 10
}

func areaFor(rng *rand.Rand, crop string) float64 {
	base := 2000 + rng.Intn(18001)
	switch crop {
	case "Sugarcane", "Cotton", "Rice", "Wheat":
		base += 4000
	case "Potato", "Onion", "Tomato":
		base -= 1000
	}
	if base < 800 {
		base = 800
	}
	return float64(base)
}

func record(r entities.YieldRecord) []string {
	return []string{
		r.State,
		r.District,
		strconv.Itoa(*r.Year),
		r.Season,
		r.Crop,
		strconv.FormatFloat(r.AreaHa, 'f', -1, 64),
		strconv.FormatFloat(*r.ProductionQ, 'f', -1, 64),
		strconv.FormatFloat(*r.YieldQPerHa, 'f', 1, 64),
	}
}

func writeCSV(w io.Writer, rows []entities.YieldRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeXLSX streams rows into a single sheet; numeric columns stay numeric.
func writeXLSX(path string, rows []entities.YieldRecord) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return err
	}
	head := make([]interface{}, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := sw.SetRow("A1", head); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		vals := []interface{}{r.State, r.District, *r.Year, r.Season, r.Crop, r.AreaHa, *r.ProductionQ, *r.YieldQPerHa}
		if err := sw.SetRow(cell, vals); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.SaveAs(path)
}
