// Command catalog-report renders a part catalog as an xlsx workbook for
// balance review: one sheet per part type, one row per rarity tier.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"gunsmith-backend/internal/catalog"
	"gunsmith-backend/internal/stats"

	"github.com/xuri/excelize/v2"
)

func colName(n int) string {
	// 1-indexed: 1 -> A, 26 -> Z, 27 -> AA
	if n <= 0 {
		return ""
	}
	out := ""
	for n > 0 {
		n--
		out = string(rune('A'+(n%26))) + out
		n /= 26
	}
	return out
}

var headers = []string{
	"Rarity", "Min Price", "Max Price", "Min Stat", "Max Stat",
	"Min Ammo", "Max Ammo", "Name Fragments", "Meshes",
}

func main() {
	catalogPath := flag.String("catalog", "config/catalog.yaml", "path to the catalog file")
	outPath := flag.String("out", "catalog-report.xlsx", "output xlsx path")
	flag.Parse()

	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	if err := export(cat, *outPath); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	log.Printf("Report written to %s", *outPath)
}

func export(cat *catalog.Catalog, path string) error {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Font:      &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	// Sheet order follows the attachment slot order; part types missing
	// from the catalog are simply skipped.
	wrote := false
	for _, partType := range stats.SlotOrder {
		class, ok := cat.Class(partType)
		if !ok {
			continue
		}

		sheet := string(partType)
		if !wrote {
			// Rename the default sheet instead of leaving Sheet1 around.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
			wrote = true
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
		}

		f.SetCellValue(sheet, "A1", fmt.Sprintf("Influences: %s", strings.Join(class.Influences, ", ")))
		lastCol := colName(len(headers))
		_ = f.MergeCell(sheet, "A1", fmt.Sprintf("%s1", lastCol))

		for i, h := range headers {
			f.SetCellValue(sheet, fmt.Sprintf("%s2", colName(i+1)), h)
		}
		if err := f.SetCellStyle(sheet, "A1", fmt.Sprintf("%s2", lastCol), headerStyle); err != nil {
			return err
		}

		tiers := append([]catalog.Tier(nil), class.Tiers...)
		sort.Slice(tiers, func(i, j int) bool { return tiers[i].Rarity < tiers[j].Rarity })

		for rowIdx, tier := range tiers {
			row := rowIdx + 3
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), strings.Repeat("★", tier.Rarity))
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), tier.MinPrice)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), tier.MaxPrice)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), tier.MinStat)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), tier.MaxStat)
			if partType == stats.PartMagazine {
				f.SetCellValue(sheet, fmt.Sprintf("F%d", row), tier.MinAmmo)
				f.SetCellValue(sheet, fmt.Sprintf("G%d", row), tier.MaxAmmo)
			}
			f.SetCellValue(sheet, fmt.Sprintf("H%d", row), strings.Join(tier.NameFragments, ", "))

			meshes := make([]string, 0, len(tier.Meshes))
			for _, m := range tier.Meshes {
				meshes = append(meshes, m.Mesh)
			}
			f.SetCellValue(sheet, fmt.Sprintf("I%d", row), strings.Join(meshes, ", "))
		}
	}

	if !wrote {
		return fmt.Errorf("catalog has no part classes to report")
	}
	return f.SaveAs(path)
}
