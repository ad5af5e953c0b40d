package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// readTable читает CSV-таблицу построчно. Строки короче minFields и строки
// с ошибками разбора пропускаются с предупреждением. apply возвращает false,
// если данные строки не распарсились (например, не-числовой ID).
func (s *Store) readTable(path, table string, minFields int, apply func(rec []string) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", table, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	line := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			s.logger.Warn("malformed line skipped",
				zap.String("table", table),
				zap.Int("line", line),
				zap.Error(err),
			)
			continue
		}
		if len(rec) < minFields {
			s.logger.Warn("short line skipped",
				zap.String("table", table),
				zap.Int("line", line),
			)
			continue
		}
		if !apply(rec) {
			s.logger.Warn("bad data skipped",
				zap.String("table", table),
				zap.Int("line", line),
			)
		}
	}

	return nil
}
