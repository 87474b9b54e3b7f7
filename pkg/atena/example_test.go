package atena_test

import (
	"fmt"

	"github.com/crimson-sun/atena/pkg/atena"
)

func Example() {
	s, err := atena.New()
	if err != nil {
		panic(err)
	}

	s.ImportText(`"abc123",1.2.3.4,6881,"2023/01/28 04:03:17",host1,"au"`, atena.ImportMeta{
		Category:    "映画A",
		SourceType:  "isp",
		ProductCode: "P001",
	})

	matched := s.Filter(atena.Criteria{ISPs: []string{"KDDI"}})
	fmt.Println(len(matched), atena.VIPN(matched[0]))
	// Output: 1 V1E966112
}

func ExampleNormalizeISP() {
	fmt.Println(atena.NormalizeISP("au"))
	fmt.Println(atena.NormalizeISP("SoftBank Corp."))
	// Output:
	// KDDI
	// ソフトバンク
}
