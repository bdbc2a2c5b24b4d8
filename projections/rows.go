package projections

import (
	"time"

	"github.com/Station-Manager/automap"
	models "github.com/Station-Manager/database/sqlite/models"
	"github.com/Station-Manager/errors"
)

// QsoRow is a tabular projection of a stored QSO model, carrying the model
// column types as-is (the mapper copies, it does not convert).
type QsoRow struct {
	Band    string
	Mode    string
	Freq    float64
	QsoDate time.Time
	RstRcvd string
	RstSent string
}

// QsoRows projects a slice of stored QSO models into rows.
func QsoRows(m *automap.Mapper, slice models.QsoSlice) ([]QsoRow, error) {
	const op errors.Op = "projections.QsoRows"

	result := make([]QsoRow, 0, len(slice))
	for _, model := range slice {
		row, err := automap.Make[QsoRow](m, model)
		if err != nil {
			return nil, errors.New(op).Err(err)
		}
		result = append(result, row)
	}
	return result, nil
}
