package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one symbol's trading data for a single day.
type Record struct {
	Date   string // date token as it appeared in the source, e.g. "20200101"
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64

	day int64
}

// Day returns the integer value of the date token, used for ordering.
func (r Record) Day() int64 { return r.day }

// Before reports whether r falls on an earlier day than o.
func (r Record) Before(o Record) bool { return r.day < o.day }

func (r Record) String() string {
	return fmt.Sprintf("%s O=%.4f H=%.4f L=%.4f C=%.4f V=%d", r.Date, r.Open, r.High, r.Low, r.Close, r.Volume)
}

// ParseRecord builds a Record from the six data tokens shared by both file
// formats: date, open, high, low, close, volume.
func ParseRecord(fields [6]string) (Record, error) {
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	day, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: date %q", ErrFieldParse, fields[0])
	}

	var prices [4]float64
	for i, name := range []string{"open", "high", "low", "close"} {
		p, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Record{}, fmt.Errorf("%w: %s %q", ErrFieldParse, name, fields[i+1])
		}
		prices[i] = p
	}

	volume, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: volume %q", ErrFieldParse, fields[5])
	}
	if volume < 0 {
		return Record{}, fmt.Errorf("%w: negative volume %d", ErrFieldParse, volume)
	}

	return Record{
		Date:   fields[0],
		Open:   prices[0],
		High:   prices[1],
		Low:    prices[2],
		Close:  prices[3],
		Volume: volume,
		day:    day,
	}, nil
}
