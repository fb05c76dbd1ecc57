package actions

import (
	"fmt"
	"io"

	"github.com/ethpandaops/logtools/internal/config"
)

// ShowConfig displays the current configuration
func ShowConfig(w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintln(w, cfg.String())
	return nil
}
