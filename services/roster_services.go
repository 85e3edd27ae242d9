package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"api/config"
	"api/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/xuri/excelize/v2"
)

const rosterCacheTTL = 12 * time.Hour

// ErrStudentNotFound is returned when a roll number appears in none of the
// enrollment workbooks.
var ErrStudentNotFound = errors.New("student not found in enrollment sheets")

// Student holds the biographical fields resolved from the enrollment sheets
type Student struct {
	RollNumber string `json:"rollnumber"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Branch     string `json:"branch"`
	Course     string `json:"course"`
	Year       string `json:"year"`
}

// columnAliases maps each student field to the header spellings seen across
// the enrollment workbooks. Matching is case- and whitespace-insensitive.
var columnAliases = map[string][]string{
	"rollnumber": {"Roll Number", "University Roll Number", "UNI ROLL NO"},
	"name":       {"Display Name", "NAME", "Full Name"},
	"email":      {"KIET EMAIL", "Institute Email ID", "Email"},
	"phone":      {"Mobile Number", "MOB", "Phone"},
	"branch":     {"Branch", "DEPT", "Degree", "Department"},
	"course":     {"COURSE", "Program"},
	"year":       {"Current Year", "YEAR", "Year of Study"},
}

// RosterService resolves roll numbers against the enrollment XLSX workbooks.
// Lookups are cached in Redis when configured, since every miss otherwise
// rescans all workbooks.
type RosterService struct {
	dir   string
	cache *redis.Client
}

func NewRosterService() *RosterService {
	s := &RosterService{dir: config.RosterDir}
	if config.RedisHost != "" {
		s.cache = redis.NewClient(&redis.Options{
			Addr:     config.RedisHost + ":" + config.RedisPort,
			Password: config.RedisPassword,
		})
	}
	return s
}

// FindStudentByRollNumber scans the workbooks for the given roll number
func (s *RosterService) FindStudentByRollNumber(ctx context.Context, rollNumber string) (*Student, error) {
	start := time.Now()
	defer func() {
		metrics.RosterLookupDuration.Observe(time.Since(start).Seconds())
	}()

	key := normalizeCell(rollNumber)
	if key == "" {
		return nil, ErrStudentNotFound
	}

	if student := s.cacheGet(ctx, key); student != nil {
		metrics.RosterCacheHits.Inc()
		return student, nil
	}

	files, err := filepath.Glob(filepath.Join(s.dir, "*.xlsx"))
	if err != nil {
		return nil, fmt.Errorf("failed to list roster files: %w", err)
	}

	for _, file := range files {
		student, err := scanWorkbook(file, key)
		if err != nil {
			return nil, err
		}
		if student != nil {
			s.cacheSet(ctx, key, student)
			return student, nil
		}
	}
	return nil, ErrStudentNotFound
}

// scanWorkbook searches the first sheet of one workbook for the roll number
func scanWorkbook(path, rollKey string) (*Student, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster file %s: %w", filepath.Base(path), err)
	}
	defer xlsx.Close()

	sheets := xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := xlsx.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read roster sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	columns := matchColumns(rows[0])
	rollIdx, ok := columns["rollnumber"]
	if !ok {
		return nil, nil
	}

	for _, row := range rows[1:] {
		if len(row) <= rollIdx || normalizeCell(row[rollIdx]) != rollKey {
			continue
		}
		return &Student{
			RollNumber: cell(row, columns, "rollnumber"),
			Name:       cell(row, columns, "name"),
			Email:      cell(row, columns, "email"),
			Phone:      cell(row, columns, "phone"),
			Branch:     cell(row, columns, "branch"),
			Course:     cell(row, columns, "course"),
			Year:       cell(row, columns, "year"),
		}, nil
	}
	return nil, nil
}

// matchColumns resolves each student field to a header index via the alias
// table. Fields with no matching header are absent from the result.
func matchColumns(header []string) map[string]int {
	columns := make(map[string]int, len(columnAliases))
	for field, aliases := range columnAliases {
		for _, alias := range aliases {
			for i, h := range header {
				if normalizeCell(h) == normalizeCell(alias) {
					columns[field] = i
					break
				}
			}
			if _, ok := columns[field]; ok {
				break
			}
		}
	}
	return columns
}

// cell reads the named field's cell from a row, empty when the workbook has
// no matching header or the row is short.
func cell(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func normalizeCell(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func (s *RosterService) cacheGet(ctx context.Context, rollKey string) *Student {
	if s.cache == nil {
		return nil
	}
	payload, err := s.cache.Get(ctx, "roster:"+rollKey).Bytes()
	if err != nil {
		return nil
	}
	var student Student
	if err := json.Unmarshal(payload, &student); err != nil {
		return nil
	}
	return &student
}

func (s *RosterService) cacheSet(ctx context.Context, rollKey string, student *Student) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(student)
	if err != nil {
		return
	}
	s.cache.Set(ctx, "roster:"+rollKey, payload, rosterCacheTTL)
}
