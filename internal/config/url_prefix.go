package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix базовый адрес коротких ссылок, хранится без завершающего слэша
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	parsed, err := url.Parse(value)
	if err != nil || !strings.HasPrefix(parsed.Scheme, "http") || parsed.Host == "" {
		return fmt.Errorf("invalid URL prefix format: %s", value)
	}

	*p = URLPrefix(strings.TrimSuffix(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}
