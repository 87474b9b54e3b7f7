// Package atena turns Shift_JIS monitoring exports into webletter mailing
// documents and VIPN reconciliation maps.
//
// Quick start:
//
//	s, err := atena.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := s.ImportFile("batch.csv", atena.ImportMeta{
//	    Category:    "映画A",
//	    SourceType:  "isp",
//	    ProductCode: "P001",
//	}); err != nil {
//	    log.Fatal(err)
//	}
//
//	matched := s.Filter(atena.Criteria{ISPs: []string{"KDDI"}})
//	if _, err := s.WriteWebletter("webletter.csv", matched, "KDDI"); err != nil {
//	    log.Fatal(err)
//	}
//
// A Session lives for one export run: import everything first, then filter
// and export. Filtering and export never mutate the imported records.
package atena
