package render

import "github.com/ge0rg3e/init-tp/internal/project"

type scripts struct {
	Start string `json:"start"`
	Build string `json:"build"`
	Dev   string `json:"dev"`
}

// toolchain is everything package.json needs to know about a compiler.
type toolchain struct {
	Main    string
	Scripts scripts
	DevDeps map[string]string
}

const esbuildCmd = "esbuild src/index.ts --bundle --platform=node --outfile=dist/index.js"

var toolchains = map[project.Compiler]toolchain{
	project.CompilerTSC: {
		Main: "dist/index.js",
		Scripts: scripts{
			Start: "node dist/index.js",
			Build: "tsc",
			Dev:   "tsx watch src/index.ts",
		},
		DevDeps: map[string]string{"tsx": "^4.19.2"},
	},
	project.CompilerESBuild: {
		Main: "dist/index.js",
		Scripts: scripts{
			Start: "node dist/index.js",
			Build: esbuildCmd,
			Dev:   esbuildCmd + " --watch",
		},
		DevDeps: map[string]string{"esbuild": "^0.24.0"},
	},
	// swc keeps the src/ prefix under the output directory.
	project.CompilerSWC: {
		Main: "dist/src/index.js",
		Scripts: scripts{
			Start: "node dist/src/index.js",
			Build: "swc src -d dist",
			Dev:   "swc src -d dist --watch",
		},
		DevDeps: map[string]string{
			"@swc/cli":  "^0.5.2",
			"@swc/core": "^1.10.1",
		},
	},
}

// baseDevDeps are added for every compiler.
var baseDevDeps = map[string]string{
	"typescript":  "^5.7.2",
	"@types/node": "^22.10.1",
}

// manager is everything the generated files need to know about a
// package manager.
type manager struct {
	Invoke  string
	Install string
	Run     string
	Extras  []File
}

var managers = map[project.PackageManager]manager{
	project.PackageManagerNPM: {
		Invoke:  "npx init-tp",
		Install: "npm install",
		Run:     "npm run",
	},
	project.PackageManagerPNPM: {
		Invoke:  "pnpm dlx init-tp",
		Install: "pnpm install",
		Run:     "pnpm",
		Extras: []File{
			{Path: FileNpmrc, Data: npmrc},
			{Path: FilePnpmWorkspace, Data: pnpmWorkspace},
		},
	},
}
