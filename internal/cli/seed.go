package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/ai"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/db"
	"github.com/Abdul-bari-Zahid/doctor-startup/internal/services"
)

// RunSeedDietsCommand upserts the built-in diet catalog by plan name.
func RunSeedDietsCommand(dbPath string, stdout io.Writer) error {
	if stdout == nil {
		stdout = os.Stdout
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer closeDatabase(database)

	// Seeding never calls the model, so a disabled analyzer is enough.
	analyzer := ai.NewAnalyzer(nil, ai.RetryPolicy{}, nil)
	count, err := services.NewDietService(db.NewDietRepository(database), analyzer).Seed()
	if err != nil {
		return fmt.Errorf("seed diet plans: %w", err)
	}

	fmt.Fprintf(stdout, "✅ Seeded %d diet plans\n", count)
	return nil
}
