package ci

// Vendor describes a CI/CD vendor execution environment
type Vendor struct {
	// Name is the name of the vendor
	Name string
	// Constant is the environment variable prefix used by the vendor
	Constant string
	// Env is an environment variable that can be used to quickly determine the vendor (using simple os.Getenv(env) check)
	Env string
	// EvalEnv is key/value map of environment variables that can be used to quickly determine the vendor
	EvalEnv map[string]string
	// New builds the full classifier for vendors cidiff understands beyond
	// bare detection. Nil for detection-only vendors.
	New func(Git) Config
}

// Vendors is a list of common CI/CD vendors. Entries with a New hook get
// full classification and diffbase resolution; the rest are recognized so
// cidiff can name them when declining to classify.
var Vendors = []Vendor{
	{
		Name:     "Travis CI",
		Constant: "TRAVIS",
		Env:      "TRAVIS",
		New:      func(git Git) Config { return NewTravis(git) },
	},
	{
		Name:     "AppVeyor",
		Constant: "APPVEYOR",
		Env:      "APPVEYOR",
		New:      func(git Git) Config { return NewAppVeyor(git) },
	},
	{
		Name:     "CircleCI",
		Constant: "CIRCLE",
		Env:      "CIRCLECI",
		New:      func(git Git) Config { return NewCircleCI(git) },
	},
	{
		Name:     "Azure Pipelines",
		Constant: "AZURE_PIPELINES",
		Env:      "SYSTEM_TEAMFOUNDATIONCOLLECTIONURI",
	},
	{
		Name:     "Bamboo",
		Constant: "BAMBOO",
		Env:      "bamboo_planKey",
	},
	{
		Name:     "Bitbucket Pipelines",
		Constant: "BITBUCKET",
		Env:      "BITBUCKET_COMMIT",
	},
	{
		Name:     "Bitrise",
		Constant: "BITRISE",
		Env:      "BITRISE_IO",
	},
	{
		Name:     "Buildkite",
		Constant: "BUILDKITE",
		Env:      "BUILDKITE",
	},
	{
		Name:     "Cirrus CI",
		Constant: "CIRRUS",
		Env:      "CIRRUS_CI",
	},
	{
		Name:     "AWS CodeBuild",
		Constant: "CODEBUILD",
		Env:      "CODEBUILD_BUILD_ARN",
	},
	{
		Name:     "Codefresh",
		Constant: "CODEFRESH",
		Env:      "CF_BUILD_ID",
	},
	{
		Name:     "Codeship",
		Constant: "CODESHIP",
		EvalEnv: map[string]string{
			"CI_NAME": "codeship",
		},
	},
	{
		Name:     "Drone",
		Constant: "DRONE",
		Env:      "DRONE",
	},
	{
		Name:     "GitHub Actions",
		Constant: "GITHUB_ACTIONS",
		Env:      "GITHUB_ACTIONS",
	},
	{
		Name:     "GitLab CI",
		Constant: "GITLAB",
		Env:      "GITLAB_CI",
	},
	{
		Name:     "GoCD",
		Constant: "GOCD",
		Env:      "GO_PIPELINE_LABEL",
	},
	{
		Name:     "Hudson",
		Constant: "HUDSON",
		Env:      "HUDSON_URL",
	},
	{
		Name:     "Jenkins",
		Constant: "JENKINS",
		Env:      "JENKINS_URL",
	},
	{
		Name:     "Netlify CI",
		Constant: "NETLIFY",
		Env:      "NETLIFY",
	},
	{
		Name:     "Render",
		Constant: "RENDER",
		Env:      "RENDER",
	},
	{
		Name:     "Semaphore",
		Constant: "SEMAPHORE",
		Env:      "SEMAPHORE",
	},
	{
		Name:     "Screwdriver",
		Constant: "SCREWDRIVER",
		Env:      "SCREWDRIVER",
	},
	{
		Name:     "Shippable",
		Constant: "SHIPPABLE",
		Env:      "SHIPPABLE",
	},
	{
		Name:     "TeamCity",
		Constant: "TEAMCITY",
		Env:      "TEAMCITY_VERSION",
	},
	{
		Name:     "Vercel",
		Constant: "VERCEL",
		Env:      "NOW_BUILDER",
	},
}
