package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// LoadSQLite builds a Store from a single-file SQLite snapshot of the
// register. The snapshot carries the internal schema in a `vets` table; it is
// opened read-only and closed before this function returns.
func LoadSQLite(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open register snapshot: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT name, registration_no, registration_date, address, qualifications,
		       year, cpd_date, clinic_type, treats_animals, services, district,
		       clinic_size, emergency, fixed_address, phone,
		       professional_score, service_diversity
		FROM vets
		ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query register snapshot: %w", err)
	}
	defer rows.Close()

	var records []VetRecord
	for rows.Next() {
		var rec VetRecord
		if err := rows.Scan(
			&rec.Name, &rec.RegistrationNo, &rec.RegistrationDate, &rec.Address,
			&rec.Qualifications, &rec.Year, &rec.CPDDate, &rec.ClinicType,
			&rec.TreatsAnimals, &rec.Services, &rec.District, &rec.ClinicSize,
			&rec.Emergency, &rec.FixedAddress, &rec.Phone,
			&rec.ProfessionalScore, &rec.ServiceDiversity,
		); err != nil {
			return nil, fmt.Errorf("scan register row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read register snapshot: %w", err)
	}

	return New(records)
}
