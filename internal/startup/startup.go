package startup

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Enable registers the runner to launch at login with the given config file
func Enable(configPath string) error {
	execPath, err := os.Executable()
	if err != nil {
		return err
	}
	args := []string{execPath}
	if configPath != "" {
		args = append(args, "-config", configPath)
	}

	switch runtime.GOOS {
	case "darwin":
		return writeFile(macOSPlistPath(), macOSPlist(args))
	case "linux":
		return enableLinux(args)
	case "windows":
		return enableWindows(args)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// Disable removes the runner from login startup
func Disable() error {
	switch runtime.GOOS {
	case "darwin":
		return removeFile(macOSPlistPath())
	case "linux":
		return disableLinux()
	case "windows":
		return disableWindows()
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// IsEnabled checks if the runner is registered for startup
func IsEnabled() bool {
	switch runtime.GOOS {
	case "darwin":
		return exists(macOSPlistPath())
	case "linux":
		return exists(linuxUnitPath())
	case "windows":
		return isEnabledWindows()
	default:
		return false
	}
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func removeFile(path string) error {
	if !exists(path) {
		return nil // Already disabled
	}
	return os.Remove(path)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// --- macOS Implementation ---

const macOSLabel = "com.gopher-flexi"

func macOSPlistPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Library", "LaunchAgents", macOSLabel+".plist")
}

func macOSPlist(args []string) string {
	var b strings.Builder
	for _, a := range args {
		fmt.Fprintf(&b, "        <string>%s</string>\n", xmlEscape(a))
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>%s</string>
    <key>ProgramArguments</key>
    <array>
%s    </array>
    <key>RunAtLoad</key>
    <true/>
    <key>KeepAlive</key>
    <true/>
</dict>
</plist>
`, macOSLabel, b.String())
}

func xmlEscape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}

// --- Linux Implementation ---

const linuxUnitName = "gopher-flexi.service"

func linuxUnitPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "systemd", "user", linuxUnitName)
}

func linuxUnit(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = systemdQuote(a)
	}

	return fmt.Sprintf(`[Unit]
Description=GopherFlexi MIDI surface mapper
After=sound.target

[Service]
ExecStart=%s
Restart=on-failure

[Install]
WantedBy=default.target
`, strings.Join(quoted, " "))
}

func systemdQuote(s string) string {
	if !strings.ContainsAny(s, " \t\"\\") {
		return s
	}
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

func enableLinux(args []string) error {
	if err := writeFile(linuxUnitPath(), linuxUnit(args)); err != nil {
		return err
	}
	// The unit file alone is enough for IsEnabled; systemctl may be missing
	if err := exec.Command("systemctl", "--user", "enable", linuxUnitName).Run(); err != nil {
		return fmt.Errorf("unit written but not enabled: %w", err)
	}
	return nil
}

func disableLinux() error {
	// Ignore error if the unit was never enabled
	_ = exec.Command("systemctl", "--user", "disable", linuxUnitName).Run()
	return removeFile(linuxUnitPath())
}

// --- Windows Implementation ---

const windowsRegistryKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`
const windowsAppName = "GopherFlexi"

func windowsCommandLine(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = `"` + a + `"`
	}
	return strings.Join(quoted, " ")
}

func enableWindows(args []string) error {
	// Use reg.exe to add the registry key
	cmd := exec.Command("reg", "add", windowsRegistryKey,
		"/v", windowsAppName,
		"/t", "REG_SZ",
		"/d", windowsCommandLine(args),
		"/f")
	return cmd.Run()
}

func disableWindows() error {
	cmd := exec.Command("reg", "delete", windowsRegistryKey,
		"/v", windowsAppName,
		"/f")
	output, err := cmd.CombinedOutput()
	// Ignore error if the key doesn't exist
	if err != nil && !strings.Contains(string(output), "The system was unable to find the specified registry key or value") {
		return err
	}
	return nil
}

func isEnabledWindows() bool {
	cmd := exec.Command("reg", "query", windowsRegistryKey,
		"/v", windowsAppName)
	err := cmd.Run()
	return err == nil
}
