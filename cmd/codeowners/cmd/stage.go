package cmd

import "github.com/ownerscan/codeowners/pkg/codeowners"

// codeownersStage stages the regenerated CODEOWNERS file via go-git,
// so `generate --stage` lands the artifact in the same commit as the
// ownership change that produced it.
func codeownersStage() error {
	return codeowners.StageFile(projectRoot, codeownersFile)
}
