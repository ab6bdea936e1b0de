package onepif

import (
	"PifKeeper/internal/vault"
)

const untitled = "Untitled"

// designation - куда направить поле секции в нормализованной записи.
type designation int

const (
	toCustom designation = iota
	toUsername
	toPassword
	toURL
	toEmail
)

// fill переносит поля записи в entry. Один вариант на каждый вид записи.
func fill(entry *vault.Node, rec *UnifiedRecord) {
	fillCommon(entry, rec)

	switch rec.Type() {
	case RecordTypeLogin:
		fillLogin(entry, rec)
	case RecordTypePassword:
		fillPassword(entry, rec)
	case RecordTypeSecureNote:
		fillSections(entry, rec, nil)
	case RecordTypeDatabase:
		fillSections(entry, rec, map[string]designation{
			"username": toUsername,
			"password": toPassword,
			"hostname": toURL,
		})
	case RecordTypeServer:
		fillSections(entry, rec, map[string]designation{
			"username": toUsername,
			"password": toPassword,
			"url":      toURL,
		})
	case RecordTypeWirelessRouter:
		fillSections(entry, rec, map[string]designation{
			"network_name":      toUsername,
			"wireless_password": toPassword,
			"server":            toURL,
		})
	case RecordTypeEmailAccount:
		fillSections(entry, rec, map[string]designation{
			"pop_username": toUsername,
			"pop_password": toPassword,
			"pop_server":   toURL,
		})
	case RecordTypeIdentity:
		fillSections(entry, rec, map[string]designation{
			"username": toUsername,
			"email":    toEmail,
			"website":  toURL,
		})
	case RecordTypeSoftwareLicense:
		fillSections(entry, rec, map[string]designation{
			"reg_email":         toEmail,
			"download_link":     toURL,
			"publisher_website": toURL,
		})
	case RecordTypeMembership, RecordTypeRewardProgram:
		fillSections(entry, rec, map[string]designation{
			"pin":     toPassword,
			"website": toURL,
		})
	case RecordTypeBankAccount:
		fillSections(entry, rec, map[string]designation{
			"telephonePin": toPassword,
		})
	case RecordTypeCreditCard, RecordTypeDriversLicense, RecordTypeOutdoorLicense,
		RecordTypePassport, RecordTypeSocialSecurityNumber:
		fillSections(entry, rec, nil)
	case RecordTypeUnknown:
		fillLogin(entry, rec)
	case RecordTypeSavedSearch, RecordTypeRegularFolder:
		// не импортируются
	}
}

func fillCommon(entry *vault.Node, rec *UnifiedRecord) {
	entry.Title = rec.Title
	if entry.Title == "" {
		entry.Title = untitled
	}
	if cat := rec.Type().Category(); cat != CategoryUnknown {
		entry.Icon = cat.Icon()
	}

	f := &entry.Fields
	f.Notes = rec.SecureContents.NotesPlain
	if len(rec.OpenContents.Tags) > 0 {
		f.Tags = append([]string(nil), rec.OpenContents.Tags...)
	}
	if rec.CreatedAt != nil {
		f.Created = rec.CreatedAt.Time
	}
	if rec.UpdatedAt != nil {
		f.Modified = rec.UpdatedAt.Time
	}
}

func fillLogin(entry *vault.Node, rec *UnifiedRecord) {
	f := &entry.Fields
	sc := rec.SecureContents

	f.URL = rec.Location
	for _, u := range sc.URLs {
		if u.URL == "" || u.URL == f.URL {
			continue
		}
		if f.URL == "" {
			f.URL = u.URL
			continue
		}
		key := u.Label
		if key == "" {
			key = "URL"
		}
		f.SetCustomField(key, u.URL, false)
	}

	for _, fld := range sc.Fields {
		value := fld.Value.Format("")
		switch {
		case fld.Designation == "username" && f.Username == "":
			f.Username = value
		case fld.Designation == "password" && f.Password == "":
			f.Password = value
		case fld.Type == "B":
			// кнопки формы не несут данных
		default:
			key := fld.Name
			if key == "" {
				key = fld.Designation
			}
			f.SetCustomField(key, value, fld.Type == "P")
		}
	}
	if f.Password == "" {
		f.Password = sc.Password
	}

	fillSections(entry, rec, nil)
}

func fillPassword(entry *vault.Node, rec *UnifiedRecord) {
	entry.Fields.Password = rec.SecureContents.Password
	entry.Fields.URL = rec.Location
	fillSections(entry, rec, nil)
}

// fillSections переносит поля секций: назначенные имена - в стандартные поля
// (если те ещё пусты), остальные - в пользовательские. concealed защищается.
func fillSections(entry *vault.Node, rec *UnifiedRecord, designations map[string]designation) {
	f := &entry.Fields
	for _, sec := range rec.SecureContents.Sections {
		for _, fld := range sec.Fields {
			value := fld.Value.Format(fld.Kind)
			if value == "" {
				continue
			}
			if assignDesignated(f, designations[fld.Name], value) {
				continue
			}
			key := fld.Title
			if key == "" {
				key = fld.Name
			}
			f.SetCustomField(key, value, fld.Kind == "concealed")
		}
	}
}

func assignDesignated(f *vault.Fields, d designation, value string) bool {
	var target *string
	switch d {
	case toUsername:
		target = &f.Username
	case toPassword:
		target = &f.Password
	case toURL:
		target = &f.URL
	case toEmail:
		target = &f.Email
	case toCustom:
		return false
	}
	if target == nil || *target != "" {
		return false
	}
	*target = value
	return true
}
