package dto

import "lendit/internal/domain/entities"

type ListJournalEntriesQuery struct {
	Limit int
}

type ListJournalEntriesOutput struct {
	Enabled bool                    `json:"enabled"`
	Entries []entities.JournalEntry `json:"entries"`
}
