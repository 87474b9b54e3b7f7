package export

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/crimson-sun/atena/internal/sjis"
)

// WriteFile encodes a rendered document and writes it to path in one shot.
// Shift_JIS is preferred; when the document contains a rune Shift_JIS
// cannot represent, the file is written as UTF-8 with a BOM and the
// fallback is logged. Returns whether the Shift_JIS path was taken.
func WriteFile(path, document string) (bool, error) {
	data, isSJIS := sjis.Encode(document)
	if !isSJIS {
		slog.Warn("document not representable in Shift_JIS, falling back to UTF-8 with BOM", "path", path)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return isSJIS, fmt.Errorf("export: open %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if _, err := w.Write(data); err != nil {
		f.Close()
		return isSJIS, fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return isSJIS, fmt.Errorf("export: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return isSJIS, fmt.Errorf("export: close %s: %w", path, err)
	}
	return isSJIS, nil
}
