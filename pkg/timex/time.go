// Package timex 提供 ISO-8601 序列化的时间类型
package timex

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Format 对外序列化使用的时间格式 (ISO-8601 / RFC3339)
const Format = time.RFC3339

// Time wraps time.Time and serializes as an ISO-8601 string.
// Time 包装 time.Time，JSON 序列化为 ISO-8601 字符串。
type Time time.Time

// Now returns the current moment as a timex.Time.
func Now() Time {
	return Time(time.Now())
}

// Time converts back to the standard library type.
func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) UnixMicro() int64 {
	return time.Time(t).UnixMicro()
}

func (t Time) UnixNano() int64 {
	return time.Time(t).UnixNano()
}

func (t Time) Format(layout string) string {
	return time.Time(t).Format(layout)
}

func (t Time) String() string {
	return time.Time(t).Format(Format)
}

// Before reports whether t is before u.
func (t Time) Before(u Time) bool {
	return time.Time(t).Before(time.Time(u))
}

// After reports whether t is after u.
func (t Time) After(u Time) bool {
	return time.Time(t).After(time.Time(u))
}

// MarshalJSON implements json.Marshaler.
// MarshalJSON 实现 json.Marshaler 接口
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(Format) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
// UnmarshalJSON 实现 json.Unmarshaler 接口
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*t = Time(time.Time{})
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("timex: invalid time literal %s", s)
	}
	parsed, err := time.Parse(Format, s[1:len(s)-1])
	if err != nil {
		// 兼容带纳秒的 ISO-8601 变体
		parsed, err = time.Parse(time.RFC3339Nano, s[1:len(s)-1])
		if err != nil {
			return err
		}
	}
	*t = Time(parsed)
	return nil
}

// Value implements driver.Valuer so the type can be stored by gorm.
func (t Time) Value() (driver.Value, error) {
	return time.Time(t), nil
}

// Scan implements sql.Scanner.
func (t *Time) Scan(v any) error {
	switch value := v.(type) {
	case time.Time:
		*t = Time(value)
		return nil
	case string:
		parsed, err := time.Parse(Format, value)
		if err != nil {
			return err
		}
		*t = Time(parsed)
		return nil
	default:
		return fmt.Errorf("timex: cannot scan %T into timex.Time", v)
	}
}
