package shields_test

import (
	"fmt"

	"github.com/matzehuels/badgegen/pkg/shields"
)

func ExampleBuildURL() {
	var params shields.Params
	params.Set("foo", "1")
	params.Set("bar", "2")

	fmt.Println(shields.BuildURL("https://x.test/a", params))
	fmt.Println(shields.BuildURL("https://x.test/a", nil))
	// Output:
	// https://x.test/a?foo=1&bar=2
	// https://x.test/a
}

func ExampleLogoQueryParams() {
	params := shields.LogoQueryParams(shields.LogoAppearance{Logo: "react", IsLarge: true})
	fmt.Println(shields.BuildURL(shields.StaticBadgeURL("dependency", "react", "blue"), params))
	// Output:
	// https://img.shields.io/badge/dependency-react-blue?logo=react&style=for-the-badge
}

func ExampleParseRegistry() {
	reg, err := shields.ParseRegistry("npm")
	if err != nil {
		panic(err)
	}
	fmt.Println(reg, reg.PackageURL("express"))
	// Output:
	// node https://www.npmjs.com/package/express
}
