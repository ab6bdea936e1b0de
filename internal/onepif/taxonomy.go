package onepif

import "PifKeeper/internal/vault"

// RecordType - закрытый перечень видов записей 1PIF.
type RecordType int

const (
	RecordTypeUnknown RecordType = iota
	RecordTypeLogin
	RecordTypeSecureNote
	RecordTypeCreditCard
	RecordTypeIdentity
	RecordTypePassword
	RecordTypeSavedSearch
	RecordTypeRegularFolder
	RecordTypeBankAccount
	RecordTypeDatabase
	RecordTypeSoftwareLicense
	RecordTypeWirelessRouter
	RecordTypeServer
	RecordTypeDriversLicense
	RecordTypeOutdoorLicense
	RecordTypePassport
	RecordTypeSocialSecurityNumber
	RecordTypeMembership
	RecordTypeRewardProgram
	RecordTypeEmailAccount
)

var recordTypeByTypeName = map[string]RecordType{
	"webforms.WebForm":                 RecordTypeLogin,
	"securenotes.SecureNote":           RecordTypeSecureNote,
	"wallet.financial.CreditCard":      RecordTypeCreditCard,
	"identities.Identity":              RecordTypeIdentity,
	"passwords.Password":               RecordTypePassword,
	"system.folder.SavedSearch":        RecordTypeSavedSearch,
	"system.folder.Regular":            RecordTypeRegularFolder,
	"wallet.financial.BankAccountUS":   RecordTypeBankAccount,
	"wallet.computer.Database":         RecordTypeDatabase,
	"wallet.computer.License":          RecordTypeSoftwareLicense,
	"wallet.computer.Router":           RecordTypeWirelessRouter,
	"wallet.computer.UnixServer":       RecordTypeServer,
	"wallet.government.DriversLicense": RecordTypeDriversLicense,
	"wallet.government.HuntingLicense": RecordTypeOutdoorLicense,
	"wallet.government.Passport":       RecordTypePassport,
	"wallet.government.SsnUS":          RecordTypeSocialSecurityNumber,
	"wallet.membership.Membership":     RecordTypeMembership,
	"wallet.membership.RewardProgram":  RecordTypeRewardProgram,
	"wallet.onlineservices.Email.v2":   RecordTypeEmailAccount,
}

// LookupRecordType ищет typeName в таксономии. ok=false для неизвестных имён.
func LookupRecordType(typeName string) (RecordType, bool) {
	rt, ok := recordTypeByTypeName[typeName]
	return rt, ok
}

// ResolveRecordType никогда не падает: неизвестные имена дают RecordTypeUnknown.
func ResolveRecordType(typeName string) RecordType {
	if rt, ok := LookupRecordType(typeName); ok {
		return rt
	}
	return RecordTypeUnknown
}

// IsImportable - сохранённые поиски и папки не импортируются как записи.
// Unknown импортируется, чтобы нераспознанные записи не терялись.
func (t RecordType) IsImportable() bool {
	switch t {
	case RecordTypeSavedSearch, RecordTypeRegularFolder:
		return false
	default:
		return true
	}
}

// Category возвращает группу отображения для вида записи.
func (t RecordType) Category() ItemCategory {
	switch t {
	case RecordTypeLogin:
		return CategoryLogins
	case RecordTypeSecureNote:
		return CategorySecureNotes
	case RecordTypeCreditCard:
		return CategoryCreditCards
	case RecordTypeIdentity:
		return CategoryIdentities
	case RecordTypePassword:
		return CategoryPasswords
	case RecordTypeBankAccount:
		return CategoryBankAccounts
	case RecordTypeDatabase:
		return CategoryDatabases
	case RecordTypeSoftwareLicense:
		return CategorySoftwareLicenses
	case RecordTypeWirelessRouter:
		return CategoryWirelessRouters
	case RecordTypeServer:
		return CategoryServers
	case RecordTypeDriversLicense:
		return CategoryDriversLicenses
	case RecordTypeOutdoorLicense:
		return CategoryOutdoorLicenses
	case RecordTypePassport:
		return CategoryPassports
	case RecordTypeSocialSecurityNumber:
		return CategorySocialSecurityNumbers
	case RecordTypeMembership:
		return CategoryMemberships
	case RecordTypeRewardProgram:
		return CategoryRewardPrograms
	case RecordTypeEmailAccount:
		return CategoryEmailAccounts
	case RecordTypeSavedSearch, RecordTypeRegularFolder, RecordTypeUnknown:
		return CategoryUnknown
	default:
		return CategoryUnknown
	}
}

func (t RecordType) String() string {
	for name, rt := range recordTypeByTypeName {
		if rt == t {
			return name
		}
	}
	return "unknown"
}

// ItemCategory - группа отображения; значение используется как заголовок группы.
type ItemCategory string

const (
	CategoryUnknown               ItemCategory = "Unknown"
	CategoryLogins                ItemCategory = "Logins"
	CategorySecureNotes           ItemCategory = "Secure Notes"
	CategoryCreditCards           ItemCategory = "Credit Cards"
	CategoryIdentities            ItemCategory = "Identities"
	CategoryPasswords             ItemCategory = "Passwords"
	CategoryBankAccounts          ItemCategory = "Bank Accounts"
	CategoryDatabases             ItemCategory = "Databases"
	CategorySoftwareLicenses      ItemCategory = "Software Licenses"
	CategoryWirelessRouters       ItemCategory = "Wireless Routers"
	CategoryServers               ItemCategory = "Servers"
	CategoryDriversLicenses       ItemCategory = "Driver Licenses"
	CategoryOutdoorLicenses       ItemCategory = "Outdoor Licenses"
	CategoryPassports             ItemCategory = "Passports"
	CategorySocialSecurityNumbers ItemCategory = "Social Security Numbers"
	CategoryMemberships           ItemCategory = "Memberships"
	CategoryRewardPrograms        ItemCategory = "Reward Programs"
	CategoryEmailAccounts         ItemCategory = "Email Accounts"
)

// Icon возвращает фиксированную иконку группы категории.
func (c ItemCategory) Icon() vault.Icon {
	switch c {
	case CategoryLogins:
		return vault.IconWorld
	case CategorySecureNotes:
		return vault.IconNote
	case CategoryCreditCards:
		return vault.IconMoney
	case CategoryIdentities:
		return vault.IconIdentity
	case CategoryPasswords:
		return vault.IconKey
	case CategoryBankAccounts:
		return vault.IconHomebanking
	case CategoryDatabases:
		return vault.IconDrive
	case CategorySoftwareLicenses:
		return vault.IconProgramIcons
	case CategoryWirelessRouters:
		return vault.IconWorldComputer
	case CategoryServers:
		return vault.IconNetworkServer
	case CategoryDriversLicenses, CategoryOutdoorLicenses:
		return vault.IconCertificate
	case CategoryPassports:
		return vault.IconPaperReady
	case CategorySocialSecurityNumbers:
		return vault.IconPaperLocked
	case CategoryMemberships:
		return vault.IconUserKey
	case CategoryRewardPrograms:
		return vault.IconStar
	case CategoryEmailAccounts:
		return vault.IconEMail
	default:
		return vault.IconFolder
	}
}
