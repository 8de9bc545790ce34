package catalog

import "github.com/sigerhq/fieldreport/internal/client/models"

// DemoProjects is the built-in dataset used when neither the API nor the
// local cache can provide a catalog. It mirrors a typical irrigation works
// package so every screen stays exercisable offline.
func DemoProjects() []models.Project {
	return []models.Project{
		{
			ID:               "cm0txl9yk00015wjn8h2r3k7b",
			Work:             "Pembangunan Irigasi Desa Sukamaju",
			Contractor:       "CV Maju Bersama",
			ContractValue:    "Rp 5,500,000,000",
			ContractDate:     "2025-01-15",
			ContractEnd:      "2025-12-15",
			PhysicalProgress: 25.5,
			PhysicalTarget:   100,
			Activities: []models.Activity{
				{
					ID:    "act001",
					Name:  "Pekerjaan Persiapan",
					Order: 1,
					SubActivities: []models.SubActivity{
						{ID: "sub001", Name: "Pembersihan Lahan", Unit: "m2", ContractVolume: 1500, Weight: 15, Order: 1},
						{ID: "sub002", Name: "Pematokan", Unit: "m", ContractVolume: 500, Weight: 10, Order: 2},
					},
				},
				{
					ID:    "act002",
					Name:  "Pekerjaan Galian",
					Order: 2,
					SubActivities: []models.SubActivity{
						{ID: "sub003", Name: "Galian Saluran Primer", Unit: "m3", ContractVolume: 2500, Weight: 30, Order: 1},
						{ID: "sub004", Name: "Galian Saluran Sekunder", Unit: "m3", ContractVolume: 1200, Weight: 20, Order: 2},
					},
				},
				{
					ID:    "act003",
					Name:  "Pekerjaan Struktur",
					Order: 3,
					SubActivities: []models.SubActivity{
						{ID: "sub005", Name: "Pemasangan Pintu Air", Unit: "unit", ContractVolume: 5, Weight: 15, Order: 1},
						{ID: "sub006", Name: "Pembetonan Saluran", Unit: "m", ContractVolume: 800, Weight: 10, Order: 2},
					},
				},
			},
		},
		{
			ID:               "cm0txl9yk00025wjnf4q8m1zc",
			Work:             "Rehabilitasi Bendung Way Sekampung",
			Contractor:       "PT Tirta Karya",
			ContractValue:    "Rp 12,750,000,000",
			ContractDate:     "2025-02-01",
			ContractEnd:      "2026-01-31",
			PhysicalProgress: 10.2,
			PhysicalTarget:   100,
			Activities: []models.Activity{
				{
					ID:    "act101",
					Name:  "Pekerjaan Bongkaran",
					Order: 1,
					SubActivities: []models.SubActivity{
						{ID: "sub101", Name: "Bongkaran Pasangan Lama", Unit: "m3", ContractVolume: 350, Weight: 20, Order: 1},
					},
				},
				{
					ID:    "act102",
					Name:  "Pekerjaan Beton",
					Order: 2,
					SubActivities: []models.SubActivity{
						{ID: "sub102", Name: "Beton Mercu Bendung", Unit: "m3", ContractVolume: 420, Weight: 45, Order: 1},
						{ID: "sub103", Name: "Plesteran Sayap", Unit: "m2", ContractVolume: 260, Weight: 15, Order: 2},
					},
				},
			},
		},
	}
}
