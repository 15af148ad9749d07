package rule_test

import (
	"fmt"

	"github.com/walteh/srcpatch/pkg/rule"
)

func ExampleApplyAll() {
	rules := []rule.Rule{
		&rule.InsertAfter{
			RuleName: "import",
			Anchor:   "import 'a.dart';",
			Text:     "import 'b.dart';",
		},
		&rule.Replace{
			RuleName: "label",
			Old:      "Text('Export')",
			New:      "Text('Import')",
		},
		&rule.Replace{
			RuleName: "missing",
			Old:      "Text('Settings')",
			New:      "Text('Preferences')",
		},
	}

	content := "import 'a.dart';\nfinal label = Text('Export');\n"

	out, results := rule.ApplyAll(content, rules)
	fmt.Print(out)
	for _, res := range results {
		fmt.Printf("%s: %s\n", res.Rule, res.Outcome)
	}

	_, results = rule.ApplyAll(out, rules)
	fmt.Printf("second run: %s, %s\n", results[0].Outcome, results[1].Outcome)

	// Output:
	// import 'a.dart';
	// import 'b.dart';
	// final label = Text('Import');
	// import: applied
	// label: applied
	// missing: anchor not found
	// second run: already present, already present
}
