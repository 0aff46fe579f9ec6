package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.design/x/clipboard"

	"unit-converter/internal/logger"
)

// ErrNothingToCopy is returned when there is no result text to copy
var ErrNothingToCopy = errors.New("no result to copy")

// ClipboardWriter puts text on a clipboard
type ClipboardWriter interface {
	WriteText(text string) error
}

// SystemClipboard writes to the OS clipboard. The native clipboard is
// initialised on first use.
type SystemClipboard struct {
	once    sync.Once
	initErr error
}

func (s *SystemClipboard) WriteText(text string) error {
	s.once.Do(func() {
		s.initErr = clipboard.Init()
	})
	if s.initErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", s.initErr)
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// ClipboardService copies conversion results for pasting elsewhere
type ClipboardService struct {
	writer ClipboardWriter
	logger logger.Logger
}

func NewClipboardService(writer ClipboardWriter, log logger.Logger) *ClipboardService {
	if writer == nil {
		writer = &SystemClipboard{}
	}
	return &ClipboardService{writer: writer, logger: log}
}

// Copy writes text to the clipboard, dropping the "Result: " label so
// only the value and unit are pasted.
func (s *ClipboardService) Copy(text string) error {
	text = strings.TrimSpace(strings.TrimPrefix(text, "Result: "))
	if text == "" {
		return ErrNothingToCopy
	}

	if err := s.writer.WriteText(text); err != nil {
		s.logger.Error("ClipboardService", err, nil)
		return err
	}

	s.logger.Debug("ClipboardService", "result copied", map[string]interface{}{
		"length": len(text),
	})
	return nil
}
