package vault

// Icon - индекс стандартной иконки KeePass.
type Icon int

// Стандартный набор иконок KeePass (перечислены только используемые).
const (
	IconKey               Icon = 0
	IconWorld             Icon = 1
	IconNetworkServer     Icon = 3
	IconUserCommunication Icon = 5
	IconIdentity          Icon = 9
	IconPaperReady        Icon = 10
	IconEMail             Icon = 19
	IconDrive             Icon = 27
	IconConsole           Icon = 30
	IconProgramIcons      Icon = 32
	IconWorldComputer     Icon = 35
	IconHomebanking       Icon = 37
	IconNote              Icon = 44
	IconFolder            Icon = 48
	IconPaperLocked       Icon = 52
	IconUserKey           Icon = 58
	IconStar              Icon = 61
	IconMoney             Icon = 66
	IconCertificate       Icon = 67
)
