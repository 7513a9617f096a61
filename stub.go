package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type Branding struct {
	Product   string `yaml:"product"`
	ProductZh string `yaml:"product_zh"`
	Icon      string `yaml:"icon"`
	Addon     string `yaml:"addon"`
}

// Values are written as-is; the metadata table is trusted.
const configStubTemplate = `[InputMethod]
Name=%[1]s - %[2]s
Name[en]=%[1]s - %[2]s
Name[zh_Tw]=%[3]s - %[4]s
Icon=%[5]s
Label=%[4]s
LangCode=%[6]s
Addon=%[7]s
`

func configStub(lang Language, b Branding) string {
	return fmt.Sprintf(configStubTemplate,
		b.Product, lang.English,
		b.ProductZh, lang.Traditional,
		b.Icon, lang.ISO639_3, b.Addon)
}

func configStubPath(dir string, index int) string {
	return filepath.Join(dir, "fox_"+tableBaseName(index)+".conf")
}

func WriteConfigStub(dir string, index int, lang Language, b Branding) error {
	path := configStubPath(dir, index)
	if err := os.WriteFile(path, []byte(configStub(lang, b)), 0o644); err != nil {
		return errors.Wrap(err, "write config stub")
	}
	return nil
}
