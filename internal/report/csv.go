package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"fleetflow/internal/model"
)

var csvHeader = []string{"Vehicle", "Type", "Status", "Total Revenue", "Total Costs", "ROI %"}

// WriteCSV renders the bulk vehicle export as tabular CSV.
func WriteCSV(w io.Writer, rows []model.ExportRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.VehicleName,
			string(row.VehicleType),
			string(row.Status),
			strconv.FormatFloat(row.Revenue, 'f', 2, 64),
			strconv.FormatFloat(row.Costs, 'f', 2, 64),
			strconv.FormatFloat(row.ROI, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
