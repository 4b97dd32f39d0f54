package takeaways

import "regexp"

// pattern is one scoring rule: a name for category routing, a compiled
// regex, and the weight it contributes when matched. Keeping the battery
// as data lets each rule be tuned and tested on its own.
type pattern struct {
	name   string
	re     *regexp.Regexp
	weight int
}

const (
	patMainPoint       = "main_point"
	patContentOverview = "content_overview"
	patFinding         = "finding"
	patCausation       = "causation"
	patStatistic       = "statistic"
	patRecommendation  = "recommendation"
	patImpact          = "impact"
	patConclusion      = "conclusion"
)

// scoring is the full battery. Matches are independent and additive.
var scoring = []pattern{
	{patMainPoint, regexp.MustCompile(`(?i)\b(most important(ly)?|the (main|key|central) (point|idea|takeaway|argument)|crucially|fundamentally|above all)\b`), 4},
	{patContentOverview, regexp.MustCompile(`(?i)\b(this (article|paper|post|study|guide) (covers|explains|describes|explores|presents)|in this (article|paper|post|study|guide)|we (present|propose|introduce|describe))\b`), 4},
	{patFinding, regexp.MustCompile(`(?i)\b((study|studies|research|analysis|data|results?|survey)\s+(found|show(s|ed)?|reveal(s|ed)?|indicate(s|d)?|suggest(s|ed)?)|discovered|demonstrated|observed that)\b`), 2},
	{patCausation, regexp.MustCompile(`(?i)\b(because|therefore|consequently|as a result|due to|leads? to|caused?|causing|results? in)\b`), 2},
	{patStatistic, regexp.MustCompile(`(?i)(\d+(\.\d+)?\s*(%|percent)|\b\d+(\.\d+)?\s*(million|billion|thousand)\b|\b(doubled|tripled|halved)\b)`), 2},
	{patRecommendation, regexp.MustCompile(`(?i)\b(should|must|recommends?|recommended|needs? to|ought to|it is (important|advisable|essential) to|consider (using|adding|adopting))\b`), 2},
	{patImpact, regexp.MustCompile(`(?i)\b(impact(s|ed)?|effects?|influences?|implications?|consequences?)\b`), 2},
	{patConclusion, regexp.MustCompile(`(?i)\b(in conclusion|to (summarize|conclude|sum up)|in summary|overall|ultimately|taken together|the (results|findings) (are|were))\b`), 2},
}

// questionStart matches sentences opening with an interrogative word.
// A sentence counts as a question only when it also ends in '?'.
var questionStart = regexp.MustCompile(`(?i)^(what|why|how|when|where|who|whom|whose|which|can|could|will|would|should|is|are|was|were|do|does|did)\b`)

var digitPattern = regexp.MustCompile(`\d`)

const (
	questionWeight = 3
	lengthBonus    = 1 // sentence length in [20, 300) characters
	digitBonus     = 1
)
