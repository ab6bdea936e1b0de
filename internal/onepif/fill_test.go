package onepif

import (
	"encoding/json"
	"testing"
	"time"

	"PifKeeper/internal/vault"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, raw string) *UnifiedRecord {
	t.Helper()
	var rec UnifiedRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	return &rec
}

func filled(t *testing.T, raw string) *vault.Node {
	t.Helper()
	e := vault.NewEntry("")
	fill(e, decodeRecord(t, raw))
	return e
}

func TestFill_Login(t *testing.T) {
	e := filled(t, `{
		"typeName":"webforms.WebForm","title":"Mail","location":"https://mail.example",
		"createdAt":1400000000,"updatedAt":1500000000,
		"openContents":{"tags":["work","mail"]},
		"secureContents":{
			"notesPlain":"note",
			"URLs":[{"label":"website","url":"https://mail.example"},{"label":"alt","url":"https://m.example"}],
			"fields":[
				{"name":"u","value":"alice","type":"T","designation":"username"},
				{"name":"p","value":"pw","type":"P","designation":"password"},
				{"name":"otp","value":"123","type":"P"},
				{"name":"submit","value":"Sign in","type":"B"}
			],
			"sections":[{"title":"Extra","fields":[{"k":"string","n":"q","t":"Question","v":"pet?"}]}]
		}}`)

	f := e.Fields
	assert.Equal(t, "Mail", e.Title)
	assert.Equal(t, CategoryLogins.Icon(), e.Icon)
	assert.Equal(t, "alice", f.Username)
	assert.Equal(t, "pw", f.Password)
	assert.Equal(t, "https://mail.example", f.URL)
	assert.Equal(t, "note", f.Notes)
	assert.Equal(t, []string{"work", "mail"}, f.Tags)
	assert.Equal(t, time.Unix(1400000000, 0).UTC(), f.Created)
	assert.Equal(t, time.Unix(1500000000, 0).UTC(), f.Modified)
	assert.Equal(t, []vault.CustomField{
		{Key: "alt", Value: "https://m.example"},
		{Key: "otp", Value: "123", Protected: true},
		{Key: "Question", Value: "pet?"},
	}, f.CustomFields)
}

func TestFill_LoginURLFallsBackToFirstURL(t *testing.T) {
	e := filled(t, `{"typeName":"webforms.WebForm","secureContents":{"URLs":[{"url":"https://a"},{"url":"https://b"}]}}`)
	assert.Equal(t, "https://a", e.Fields.URL)
	assert.Equal(t, untitled, e.Title)
	cf, ok := e.Fields.CustomField("URL")
	require.True(t, ok)
	assert.Equal(t, "https://b", cf.Value)
}

func TestFill_Password(t *testing.T) {
	e := filled(t, `{"typeName":"passwords.Password","title":"Wifi","secureContents":{"password":"hunter2"}}`)
	assert.Equal(t, "hunter2", e.Fields.Password)
	assert.Equal(t, vault.IconKey, e.Icon)
}

func TestFill_SecureNote(t *testing.T) {
	e := filled(t, `{"typeName":"securenotes.SecureNote","title":"N","secureContents":{"notesPlain":"line1\nline2"}}`)
	assert.Equal(t, "line1\nline2", e.Fields.Notes)
	assert.Empty(t, e.Fields.CustomFields)
}

func TestFill_CreditCardSections(t *testing.T) {
	e := filled(t, `{"typeName":"wallet.financial.CreditCard","title":"Visa","secureContents":{"sections":[
		{"name":"","title":"","fields":[
			{"k":"string","n":"cardholder","t":"cardholder name","v":"Alice"},
			{"k":"string","n":"ccnum","t":"number","v":"4111111111111111"},
			{"k":"concealed","n":"cvv","t":"verification number","v":"123"},
			{"k":"monthYear","n":"expiry","t":"expiry date","v":202703},
			{"k":"string","n":"empty","t":"empty","v":""}
		]}]}}`)

	assert.Equal(t, CategoryCreditCards.Icon(), e.Icon)
	assert.Equal(t, []vault.CustomField{
		{Key: "cardholder name", Value: "Alice"},
		{Key: "number", Value: "4111111111111111"},
		{Key: "verification number", Value: "123", Protected: true},
		{Key: "expiry date", Value: "03/2027"},
	}, e.Fields.CustomFields)
}

func TestFill_DesignatedSectionFields(t *testing.T) {
	e := filled(t, `{"typeName":"wallet.computer.Database","title":"db","secureContents":{"sections":[{"fields":[
		{"k":"string","n":"hostname","t":"server","v":"db.local"},
		{"k":"string","n":"username","t":"username","v":"root"},
		{"k":"concealed","n":"password","t":"password","v":"toor"},
		{"k":"concealed","n":"password","t":"password","v":"second"}
	]}]}}`)

	assert.Equal(t, "root", e.Fields.Username)
	assert.Equal(t, "toor", e.Fields.Password)
	assert.Equal(t, "db.local", e.Fields.URL)
	// второе значение уже назначенного поля уходит в пользовательские
	assert.Equal(t, []vault.CustomField{{Key: "password", Value: "second", Protected: true}}, e.Fields.CustomFields)

	id := filled(t, `{"typeName":"identities.Identity","secureContents":{"sections":[{"fields":[
		{"k":"string","n":"email","t":"email","v":"a@b.c"},
		{"k":"address","n":"address","t":"address","v":{"street":"1 Main","city":"X"}}
	]}]}}`)
	assert.Equal(t, "a@b.c", id.Fields.Email)
	cf, ok := id.Fields.CustomField("address")
	require.True(t, ok)
	assert.Equal(t, "1 Main, X", cf.Value)
}

func TestFill_UnknownUsesGenericMapping(t *testing.T) {
	e := filled(t, `{"typeName":"wallet.future.Thing","title":"T","location":"https://x",
		"secureContents":{"password":"p","sections":[{"fields":[{"k":"string","n":"a","t":"A","v":"1"}]}]}}`)
	assert.Equal(t, vault.IconKey, e.Icon)
	assert.Equal(t, "https://x", e.Fields.URL)
	assert.Equal(t, "p", e.Fields.Password)
	assert.Equal(t, []vault.CustomField{{Key: "A", Value: "1"}}, e.Fields.CustomFields)
}
