package config

import "strings"

// AppVersion is the version of the application, set with -ldflags at build time.
var AppVersion = "0.0.0-dev"

// AppName is the name of the application.
const AppName = "BoringNotch"

// AppID is the reverse-DNS application id used for preferences storage.
const AppID = "com.theboredteam.boringnotch"

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"

// DefaultOSDListenAddr is where the OSD bridge connects by default.
const DefaultOSDListenAddr = "127.0.0.1:49452"
