package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nekruzvatanshoev/carstats/pkg/carstats/dal"
)

// GetCarsData reads a JSON array of car records from filename.
// Numbers are kept as json.Number so prices are not rounded through float64.
func GetCarsData(filename string) ([]dal.Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dal.ErrResourceAccess, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var records []dal.Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", dal.ErrResourceAccess, filename, err)
	}
	return records, nil
}
