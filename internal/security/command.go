package security

import (
	"strings"

	"github.com/maos-project/maos/internal/errs"
)

// denyCommandPatterns are substrings whose presence marks a shell command
// as destructive, network-exfiltrating, or privilege-escalating (§4.2,
// §6). Matching is deliberately simple substring containment, not a full
// shell parse — the same tradeoff the wider hook-validator ecosystem
// makes for this check.
var denyCommandPatterns = []string{
	"rm -rf /",
	"rm -rf ~",
	"rm -rf *",
	":(){:|:&};:",
	"mkfs",
	"dd if=/dev/zero",
	"dd if=/dev/random",
	"> /dev/sda",
	"chmod -R 777 /",
	"chmod 777 /",
	"sudo rm",
	"curl | sh",
	"curl | bash",
	"wget | sh",
	"wget | bash",
	"nc -l",
	"| nc ",
	"base64 -d | sh",
	"git push --force",
	"git push -f",
}

// ValidateCommandSafety reports Security{SuspiciousCommand} when cmd
// contains a destructive or exfiltration-shaped pattern (§4.2). Applied by
// handler logic to pre_tool_use events naming a shell tool.
func ValidateCommandSafety(cmd string) *errs.Error {
	for _, pattern := range denyCommandPatterns {
		if strings.Contains(cmd, pattern) {
			return errs.SuspiciousCommandError()
		}
	}
	return nil
}
