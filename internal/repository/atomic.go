package repository

import (
	"encoding/csv"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// atomicWrite сохраняет таблицу целиком: пишет во временный файл с
// уникальным суффиксом и переименовывает поверх целевого. Если rename
// не прошёл, удаляет целевой файл и повторяет один раз. Ошибки ввода-вывода
// логируются и не прерывают операцию: память остаётся источником истины
// до следующего успешного сохранения.
func (s *Store) atomicWrite(path string, records [][]string) {
	tmp := path + ".tmp." + uuid.NewString()

	f, err := os.Create(tmp)
	if err != nil {
		s.logger.Error("IO_WRITE: cannot create temp file",
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		s.logger.Error("IO_WRITE: cannot write temp file",
			zap.String("path", path),
			zap.Error(err),
		)
		f.Close()
		os.Remove(tmp)
		return
	}

	if err := f.Close(); err != nil {
		s.logger.Error("IO_WRITE: cannot close temp file",
			zap.String("path", path),
			zap.Error(err),
		)
		os.Remove(tmp)
		return
	}

	if err := os.Rename(tmp, path); err != nil {
		// Повторная попытка после удаления старого файла
		os.Remove(path)
		if err := os.Rename(tmp, path); err != nil {
			s.logger.Error("IO_RENAME: cannot replace table file",
				zap.String("path", path),
				zap.Error(err),
			)
			os.Remove(tmp)
		}
	}
}
