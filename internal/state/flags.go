package state

import "github.com/nolimit-nexus/nexus/internal/store"

// FlagRepo persists the simple single-record values: theme, language and the
// paid flag. These are plain strings, not chunked.
type FlagRepo interface {
	Theme() string
	SetTheme(theme string) error
	Language() string
	SetLanguage(lang string) error
	Paid() bool
	SetPaid(paid bool) error
	Clear()
}

type flagRepo struct {
	records store.RecordStore
}

// NewFlagRepo returns a FlagRepo over the given record backend.
func NewFlagRepo(records store.RecordStore) FlagRepo {
	return &flagRepo{records: records}
}

func (r *flagRepo) Theme() string {
	v, _ := r.records.Get(KeyTheme)
	return v
}

func (r *flagRepo) SetTheme(theme string) error {
	return r.records.Set(KeyTheme, theme, flagTTLDays)
}

// Language returns the persisted language, or "" when the user never picked
// one.
func (r *flagRepo) Language() string {
	v, _ := r.records.Get(KeyLanguage)
	return v
}

func (r *flagRepo) SetLanguage(lang string) error {
	return r.records.Set(KeyLanguage, lang, flagTTLDays)
}

func (r *flagRepo) Paid() bool {
	v, _ := r.records.Get(KeyPaid)
	return v == "true"
}

func (r *flagRepo) SetPaid(paid bool) error {
	if !paid {
		r.records.Delete(KeyPaid)
		return nil
	}
	return r.records.Set(KeyPaid, "true", flagTTLDays)
}

func (r *flagRepo) Clear() {
	r.records.Delete(KeyTheme)
	r.records.Delete(KeyLanguage)
	r.records.Delete(KeyPaid)
}
