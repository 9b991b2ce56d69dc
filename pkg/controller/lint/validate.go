package lint

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/pinlint/pkg/action"
	"github.com/suzuki-shunsuke/pinlint/pkg/config"
	"github.com/suzuki-shunsuke/pinlint/pkg/workflow"
)

type validator struct {
	ctx      context.Context //nolint:containedctx
	logE     *logrus.Entry
	file     string
	cfg      *config.Config
	docker   string
	resolver CommitResolver
	findings []*Finding
}

// Validate returns findings of a workflow or composite action file in file order.
// A file which can't be parsed as YAML results in a single finding.
func (c *Controller) Validate(ctx context.Context, logE *logrus.Entry, file string, content []byte) []*Finding {
	roots, err := workflow.Parse(content)
	if err != nil {
		return []*Finding{
			{
				File:    file,
				Line:    1,
				RuleID:  ruleUnparsableFile,
				Message: "unparsable file: " + firstLine(err.Error()),
			},
		}
	}
	v := &validator{
		ctx:      ctx,
		logE:     logE,
		file:     file,
		cfg:      c.cfg,
		docker:   c.dockerPolicy(),
		resolver: c.resolver,
	}
	for _, pair := range workflow.FindUses(roots) {
		v.check(pair)
	}
	return v.findings
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	first, _, _ := strings.Cut(s, "\n")
	return first
}

func (v *validator) add(line int, uses, ref, ruleID, msg string) {
	v.findings = append(v.findings, &Finding{
		File:    v.file,
		Line:    line,
		Uses:    uses,
		Ref:     ref,
		RuleID:  ruleID,
		Message: msg,
	})
}

func (v *validator) check(pair *workflow.Pair) {
	logE := v.logE.WithField("line", pair.KeyLine)
	scalar, ok := pair.Value.(*workflow.Scalar)
	if !ok {
		v.add(pair.KeyLine, "", "", ruleMalformedReference, "malformed action reference: uses must be a string")
		return
	}
	if scalar.Null || strings.TrimSpace(scalar.Value) == "" {
		v.add(pair.KeyLine, scalar.Value, "", ruleMalformedReference, "malformed action reference: uses is empty")
		return
	}
	ref, err := action.Parse(scalar.Value, scalar.Comment)
	if err != nil {
		v.add(pair.KeyLine, scalar.Value, "", ruleMalformedReference, fmt.Sprintf("malformed action reference %q: %s", scalar.Value, err))
		return
	}
	logE = logE.WithField("uses", ref.Raw)
	if ref.Local {
		logE.Debug("ignore a local action")
		return
	}
	if ref.Docker {
		v.checkDocker(logE, pair.KeyLine, ref)
		return
	}
	ignored, err := v.cfg.Ignore(ref.Path, ref.Ref)
	if err != nil {
		logerr.WithError(logE, err).Warn("check if the action is ignored")
	}
	if ignored {
		logE.Debug("ignore the action")
		return
	}
	if ref.Pinned() {
		return
	}
	v.add(pair.KeyLine, ref.Raw, ref.Ref, ruleUnpinnedAction, v.unpinnedMessage(logE, ref))
}

func (v *validator) checkDocker(logE *logrus.Entry, line int, ref *action.Reference) {
	if v.docker != config.DockerDigest {
		logE.Debug("ignore a docker image")
		return
	}
	if action.IsDigest(ref.Ref) {
		return
	}
	v.add(line, ref.Raw, ref.Ref, ruleUnpinnedDockerImage, fmt.Sprintf(
		"docker image %s is not pinned to a sha256 digest: use %s@sha256:<digest>", ref.Path, ref.Name()))
}

func (v *validator) unpinnedMessage(logE *logrus.Entry, ref *action.Reference) string {
	return fmt.Sprintf("action %s is pinned to %s %q, not a full length commit SHA: use %s@%s # %s",
		ref.Path, action.Describe(ref.Ref), ref.Ref, ref.Path, v.suggestSHA(logE, ref), ref.Ref)
}

func (v *validator) suggestSHA(logE *logrus.Entry, ref *action.Reference) string {
	const placeholder = "<full length commit SHA>"
	if v.resolver == nil {
		return placeholder
	}
	sha, err := v.resolver.Resolve(v.ctx, logE, ref.Owner, ref.Repo, ref.Ref)
	if err != nil {
		logerr.WithError(logE, err).Warn("resolve a commit SHA")
		return placeholder
	}
	if !action.IsFullSHA(sha) {
		return placeholder
	}
	return sha
}
