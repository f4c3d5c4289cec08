package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type sampleMedicine struct {
	name        string
	kind        string
	company     string
	composition string
	price       float64
}

// Creates a sample gzipped catalog file under data/catalog for local
// development. Run the API with CATALOG_ENABLED=true to import it.
func main() {
	dataDir := "data/catalog"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	medicines := []sampleMedicine{
		{"Paracetamol 500mg", "tablet", "Cipla", "Paracetamol", 25.50},
		{"Ibuprofen 400mg", "tablet", "Sun Pharma", "Ibuprofen", 32.00},
		{"Cetirizine 10mg", "tablet", "Dr. Reddy's", "Cetirizine Hydrochloride", 18.00},
		{"Amoxicillin 250mg", "capsule", "Mankind", "Amoxicillin Trihydrate", 68.25},
		{"Azithromycin 500mg", "tablet", "Alkem", "Azithromycin Dihydrate", 71.80},
		{"Pantoprazole 40mg", "tablet", "Sun Pharma", "Pantoprazole Sodium", 95.00},
		{"Dextromethorphan Syrup", "syrup", "Cipla", "Dextromethorphan Hydrobromide", 85.00},
		{"Metformin 500mg", "tablet", "USV", "Metformin Hydrochloride", 22.40},
		{"Amlodipine 5mg", "tablet", "Torrent", "Amlodipine Besylate", 30.90},
		{"ORS Powder", "powder", "FDC", "Oral Rehydration Salts", 21.00},
	}

	filePath := filepath.Join(dataDir, "medicines.csv.gz")
	if err := createCatalogFile(filePath, medicines); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d medicines\n", filePath, len(medicines))
}

func createCatalogFile(filePath string, medicines []sampleMedicine) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	for _, med := range medicines {
		line := fmt.Sprintf("%s,%s,%s,%s,%s,%.2f\n",
			uuid.NewString(), med.name, med.kind, med.company, med.composition, med.price)
		if _, err := gzipWriter.Write([]byte(line)); err != nil {
			return fmt.Errorf("failed to write medicine: %w", err)
		}
	}

	return nil
}
