// Package models defines the catalog hierarchy, daily progress records and
// client-local attachment state for the field-reporting workflow.
package models

import "sort"

// SubActivity is the terminal level of the catalog; a daily report is always
// filed against exactly one sub-activity.
type SubActivity struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Unit           string  `json:"satuan"`
	ContractVolume float64 `json:"volumeKontrak"`
	Weight         float64 `json:"weight"`
	Order          int     `json:"order"`
}

type Activity struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Order         int           `json:"order"`
	SubActivities []SubActivity `json:"subActivities"`
}

// Project is the root of the catalog. Field names follow the SIGER API
// (pekerjaan = work package, penyediaJasa = contractor).
type Project struct {
	ID               string     `json:"id"`
	Work             string     `json:"pekerjaan"`
	Contractor       string     `json:"penyediaJasa"`
	ContractValue    string     `json:"nilaiKontrak"`
	ContractDate     string     `json:"tanggalKontrak"`
	ContractEnd      string     `json:"akhirKontrak"`
	PhysicalProgress float64    `json:"fisikProgress"`
	PhysicalTarget   float64    `json:"fisikTarget"`
	Activities       []Activity `json:"activities"`
}

// NormalizeCatalog validates the catalog at the loader boundary: entries
// without an id or name are dropped, and activities/sub-activities are
// ordered by their declared order so malformed or unsorted data never
// propagates into the selection cascade.
func NormalizeCatalog(projects []Project) []Project {
	result := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.ID == "" || p.Work == "" {
			continue
		}
		activities := make([]Activity, 0, len(p.Activities))
		for _, a := range p.Activities {
			if a.ID == "" || a.Name == "" {
				continue
			}
			subs := make([]SubActivity, 0, len(a.SubActivities))
			for _, s := range a.SubActivities {
				if s.ID == "" || s.Name == "" {
					continue
				}
				subs = append(subs, s)
			}
			sort.SliceStable(subs, func(i, j int) bool { return subs[i].Order < subs[j].Order })
			a.SubActivities = subs
			activities = append(activities, a)
		}
		sort.SliceStable(activities, func(i, j int) bool { return activities[i].Order < activities[j].Order })
		p.Activities = activities
		result = append(result, p)
	}
	return result
}
