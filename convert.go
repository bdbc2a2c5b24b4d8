package automap

import (
	"github.com/Station-Manager/errors"
	"github.com/goccy/go-json"
)

// ConvertByJSON converts src into a T by a JSON round-trip. Unlike the
// Mapper, which intersects exact field names and never converts values,
// this path matches on JSON tags and accepts whatever the codec accepts,
// so it suits related shapes whose field names differ only by tag. It is
// lossy when the two shapes do not share a compatible JSON structure;
// prefer the Mapper for plain same-named copies.
func ConvertByJSON[T any](src any) (*T, error) {
	const op errors.Op = "automap.ConvertByJSON"
	var result T
	data, err := json.Marshal(src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	if err = json.Unmarshal(data, &result); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return &result, nil
}
