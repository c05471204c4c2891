package matching

// Fixed vocabularies driving the matching engine. Kept as data so the tables
// can be extended and tested without touching the scoring logic.

// designSkills is the skill lexicon matched against free text. Iteration
// follows declaration order; extraction output is a set.
var designSkills = []string{
	// Design tools
	"figma", "sketch", "adobe xd", "adobe photoshop", "adobe illustrator",
	"invision", "principle", "framer", "proto.io", "balsamiq",
	"after effects", "premiere pro", "cinema 4d", "blender",
	"midjourney", "dalle", "dall-e", "stable diffusion", "runway",

	// Design disciplines
	"ui design", "ux design", "product design", "visual design",
	"interaction design", "motion design", "graphic design", "brand design",
	"web design", "mobile design", "responsive design", "app design",
	"design systems", "component library", "design ops",

	// UX methods
	"user research", "usability testing", "user interviews", "surveys",
	"wireframing", "prototyping", "mockups", "user flows",
	"information architecture", "ia", "content strategy",
	"design thinking", "service design", "design sprint",
	"journey mapping", "personas", "competitive analysis",

	// Technical
	"html", "css", "javascript", "typescript",
	"react", "vue", "angular", "next.js", "gatsby",
	"tailwind css", "styled components", "sass", "less",
	"github", "git", "storybook",

	// Collaboration tools
	"jira", "confluence", "notion", "linear", "asana",
	"miro", "figjam", "mural", "whimsical",
	"slack", "discord", "zoom",

	// Analytics
	"google analytics", "mixpanel", "amplitude", "hotjar",
	"optimizely", "vwo", "user testing",

	// Soft skills
	"communication", "collaboration", "presentation", "storytelling",
	"problem solving", "critical thinking", "empathy",
}

// Role inclusion tiers, checked as lowercase substrings of the title.
var (
	managementRoles = []string{
		"design manager", "head of design", "design director", "creative director",
		"vp of design", "head of product design", "director of design",
	}
	seniorRoles = []string{
		"senior product designer", "senior ux designer", "senior ui designer",
		"lead product designer", "lead ux designer", "lead ui designer",
		"staff product designer", "staff ux designer", "principal designer",
	}
	specialistRoles = []string{
		"ux researcher", "user researcher", "design researcher", "design strategist",
		"design system", "design ops", "ux writer", "content designer",
		"accessibility specialist", "a11y",
	}
	baseRoles = []string{
		"product designer", "ux designer", "ui designer", "ux/ui designer", "ui/ux designer",
		"visual designer", "interaction designer", "graphic designer", "motion designer",
		"brand designer", "web designer", "digital designer",
	}
)

// excludedRoles short-circuits classification: generic business and
// engineering titles sometimes contain design-tier phrases as substrings,
// so exclusion is checked first.
var excludedRoles = []string{
	"software engineer", "software developer", "full stack", "fullstack", "frontend developer",
	"backend developer", "devops", "data engineer", "data scientist", "product manager",
	"project manager", "scrum master", "agile coach", "business analyst", "qa engineer",
	"marketing manager", "sales", "account executive", "customer success",
	"operations", "hr", "recruiter", "talent acquisition",
}

// experienceIndicators maps seniority levels to their cue phrases, checked
// in declaration order; explicit year ranges double as level cues.
var experienceIndicators = []struct {
	level      Level
	indicators []string
}{
	{LevelEntry, []string{"junior", "entry level", "associate", "graduate", "intern", "0-1 years", "0-2 years", "1-2 years"}},
	{LevelMid, []string{"mid level", "mid-level", "2-3 years", "2-4 years", "3-5 years", "intermediate"}},
	{LevelSenior, []string{"senior", "sr.", "5+ years", "5-7 years", "5-8 years", "6+ years"}},
	{LevelLead, []string{"lead", "principal", "architect", "manager", "director", "head of", "8+ years", "10+ years", "staff"}},
	{LevelExecutive, []string{"vp", "vice president", "cto", "ceo", "chief", "executive", "director", "head of"}},
}

// locationPriorities weights APAC and anglosphere locations as an auxiliary
// signal; it does not feed the 0-100 location score.
var locationPriorities = []struct {
	keyword  string
	priority int
}{
	{"sydney", 10}, {"melbourne", 10}, {"brisbane", 9}, {"perth", 9}, {"adelaide", 9}, {"canberra", 9},
	{"australia", 8}, {"au", 8},
	{"auckland", 8}, {"wellington", 8}, {"new zealand", 8}, {"nz", 8},
	{"singapore", 7}, {"sg", 7},
	{"tokyo", 6}, {"japan", 6}, {"osaka", 6},
	{"hong kong", 6}, {"hk", 6},
	{"remote", 5}, {"anywhere", 5}, {"worldwide", 5},
}

// countries recognized for the same-country location tier.
var knownCountries = []string{"australia", "new zealand", "singapore", "japan"}
