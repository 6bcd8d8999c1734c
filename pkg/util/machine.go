package util

import (
	"os"
	"strings"
	"sync"

	"github.com/denisbrodbeck/machineid"
)

var (
	machineID     string
	machineIDOnce sync.Once
)

// GetMachineID returns a stable identifier for the current machine, used to
// salt the token signing key so tokens do not survive a data-directory copy
// to another host. Falls back to the board serial, then to empty.
// GetMachineID 获取当前机器的唯一标识符，用于令牌签名密钥加盐。
func GetMachineID() string {
	machineIDOnce.Do(func() {
		if id, err := machineid.ID(); err == nil && id != "" {
			machineID = id
			return
		}
		if content, err := os.ReadFile("/sys/class/dmi/id/board_serial"); err == nil {
			machineID = strings.TrimSpace(string(content))
		}
	})
	return machineID
}
