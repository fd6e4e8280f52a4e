package demography

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/louisbranch/lineage/internal/lineage/person"
)

// Data file names inside the data directory.
const (
	FirstNamesFile        = "first_names.csv"
	LastNamesFile         = "last_names.csv"
	RankProbabilitiesFile = "rank_to_probability.csv"
	LifeExpectancyFile    = "life_expectancy.csv"
	RatesFile             = "birth_and_marriage_rates.csv"
)

// ErrMissingColumn indicates a CSV header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// Load reads every data file from dir.
func Load(dir string) (*Table, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads every data file from fsys. Any missing file or malformed
// field fails the whole load; no partially built table is returned.
func LoadFS(fsys fs.FS) (*Table, error) {
	t := NewTable()
	if err := loadFirstNames(fsys, t); err != nil {
		return nil, err
	}
	ranks, err := loadRankProbabilities(fsys)
	if err != nil {
		return nil, err
	}
	if err := loadLastNames(fsys, t, ranks); err != nil {
		return nil, err
	}
	if err := loadLifeExpectancy(fsys, t); err != nil {
		return nil, err
	}
	if err := loadRates(fsys, t); err != nil {
		return nil, err
	}
	return t, nil
}

func loadFirstNames(fsys fs.FS, t *Table) error {
	return eachRow(fsys, FirstNamesFile, []string{"decade", "gender", "name", "frequency"}, func(line int, row []string) error {
		decade, err := parseDecade(row[0])
		if err != nil {
			return rowError(FirstNamesFile, line, err)
		}
		frequency, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return rowError(FirstNamesFile, line, fmt.Errorf("parse frequency %q: %w", row[3], err))
		}
		t.AddFirstName(decade, strings.ToLower(row[1]), row[2], frequency)
		return nil
	})
}

// loadRankProbabilities reads a single line of floats; the value at index i
// is the probability of rank i+1.
func loadRankProbabilities(fsys fs.FS) (map[int]float64, error) {
	f, err := fsys.Open(RankProbabilitiesFile)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", RankProbabilitiesFile, err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %s: %w", RankProbabilitiesFile, err)
	}
	line = strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
	if line == "" {
		return nil, fmt.Errorf("%s: empty file", RankProbabilitiesFile)
	}

	fields := strings.Split(line, ",")
	ranks := make(map[int]float64, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		p, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: rank %d: parse probability %q: %w", RankProbabilitiesFile, i+1, field, err)
		}
		ranks[i+1] = p
	}
	return ranks, nil
}

func loadLastNames(fsys fs.FS, t *Table, ranks map[int]float64) error {
	return eachRow(fsys, LastNamesFile, []string{"decade", "rank", "lastname"}, func(line int, row []string) error {
		decade, err := parseDecade(row[0])
		if err != nil {
			return rowError(LastNamesFile, line, err)
		}
		rank, err := strconv.Atoi(row[1])
		if err != nil {
			return rowError(LastNamesFile, line, fmt.Errorf("parse rank %q: %w", row[1], err))
		}
		// Unranked names keep a zero weight and are never drawn.
		t.AddLastName(decade, row[2], ranks[rank])
		return nil
	})
}

func loadLifeExpectancy(fsys fs.FS, t *Table) error {
	type acc struct {
		sum   float64
		count int
	}
	byDecade := make(map[string]*acc)
	var order []string

	err := eachRow(fsys, LifeExpectancyFile, []string{"year", "life expectancy"}, func(line int, row []string) error {
		year, err := strconv.Atoi(row[0])
		if err != nil {
			return rowError(LifeExpectancyFile, line, fmt.Errorf("parse year %q: %w", row[0], err))
		}
		value, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return rowError(LifeExpectancyFile, line, fmt.Errorf("parse life expectancy %q: %w", row[1], err))
		}
		decade := person.Decade(year)
		a, ok := byDecade[decade]
		if !ok {
			a = &acc{}
			byDecade[decade] = a
			order = append(order, decade)
		}
		a.sum += value
		a.count++
		return nil
	})
	if err != nil {
		return err
	}
	for _, decade := range order {
		a := byDecade[decade]
		t.SetLifeExpectancy(decade, a.sum/float64(a.count))
	}
	return nil
}

func loadRates(fsys fs.FS, t *Table) error {
	return eachRow(fsys, RatesFile, []string{"decade", "birth_rate", "marriage_rate"}, func(line int, row []string) error {
		decade, err := parseDecade(row[0])
		if err != nil {
			return rowError(RatesFile, line, err)
		}
		birth, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return rowError(RatesFile, line, fmt.Errorf("parse birth rate %q: %w", row[1], err))
		}
		marriage, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return rowError(RatesFile, line, fmt.Errorf("parse marriage rate %q: %w", row[2], err))
		}
		t.SetRates(decade, birth, marriage)
		return nil
	})
}

// eachRow opens name, locates columns by header and calls fn for every data
// row with the fields reordered to match columns. A column matches when
// its lower-cased header equals or contains the wanted name.
func eachRow(fsys fs.FS, name string, columns []string, fn func(line int, row []string) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("read %s header: %w", name, err)
	}
	index, err := columnIndex(header, columns)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	row := make([]string, len(columns))
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		line, _ := r.FieldPos(0)
		for i, col := range index {
			row[i] = strings.TrimSpace(record[col])
		}
		if err := fn(line, row); err != nil {
			return err
		}
	}
}

func columnIndex(header []string, columns []string) ([]int, error) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}

	index := make([]int, len(columns))
	for i, want := range columns {
		index[i] = -1
		for j, h := range normalized {
			if h == want {
				index[i] = j
				break
			}
		}
		if index[i] >= 0 {
			continue
		}
		for j, h := range normalized {
			if strings.Contains(h, want) {
				index[i] = j
				break
			}
		}
		if index[i] < 0 {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, want)
		}
	}
	return index, nil
}

func parseDecade(value string) (string, error) {
	start, err := person.DecadeStart(value)
	if err != nil {
		return "", err
	}
	if start%10 != 0 {
		return "", fmt.Errorf("decade %q does not start a decade", value)
	}
	return person.Decade(start), nil
}

func rowError(file string, line int, err error) error {
	return fmt.Errorf("%s:%d: %w", file, line, err)
}
