package export_statistics

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/m04kA/SMC-SalonBooking/internal/service/statistics/models"
)

const (
	sectionMenu  = "menu"
	sectionStaff = "staff"
	sectionTotal = "total"
)

var csvHeader = []string{"section", "name", "count"}

// WriteCSV renders the report as section,name,count rows: menus first, then
// staff members, each ordered by count desc, and a closing total line.
func WriteCSV(w io.Writer, stats *models.StatisticsResponse) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range stats.MenuRows() {
		if err := cw.Write([]string{sectionMenu, row.Name, strconv.Itoa(row.Count)}); err != nil {
			return err
		}
	}
	for _, row := range stats.StaffRows() {
		if err := cw.Write([]string{sectionStaff, row.Name, strconv.Itoa(row.Count)}); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{sectionTotal, "", strconv.Itoa(stats.Total)}); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}
