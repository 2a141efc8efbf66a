package config

import "errors"

// ErrUnknownSetting indicates the setting name is not in the registry.
var ErrUnknownSetting = errors.New("unknown setting")

// UnknownSettingError reports a lookup of an unregistered setting.
type UnknownSettingError struct {
	Name string
}

func (e *UnknownSettingError) Error() string {
	return ErrUnknownSetting.Error() + ": " + e.Name
}

func (e *UnknownSettingError) Unwrap() error {
	return ErrUnknownSetting
}
