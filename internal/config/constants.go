package config

// Base application details
const AppName = "magicpad"
const DefaultConfigFileName = "config.toml"

// Editor defaults
const DefaultTagLimit = 100
const MinTagLimit = 2 // bold and italic are always registered
const DefaultTriggerChars = ":*/"
const DefaultTabWidth = 4
const SystemClipboard = true
const ConfirmNew = true
