package game

import (
	"sort"

	"github.com/pkg/errors"
)

// Built-in layouts, in the spirit of the classic Pacman test mazes.
var standardLayouts = map[string]string{
	"corridor": "P.G",
	"small": `
%%%%%%%
%P . .%
% %%% %
%.   G%
%%%%%%%`,
	"medium": `
%%%%%%%%%%
%P.   . .%
% %% %%% %
%.  .   .%
% %%%% % %
%.      G%
%%%%%%%%%%`,
	"large": `
%%%%%%%%%%%%%%%
%P. . . . . . %
% %%%%% %%%%% %
% . . .G. . . %
% %%%%% %%%%% %
%. . . . . . .%
%%%%%%%%%%%%%%%`,
}

// StandardLayout returns a fresh state for a built-in layout.
func StandardLayout(name string) (*MazeState, error) {
	text, ok := standardLayouts[name]
	if !ok {
		return nil, errors.Errorf("unknown layout %q, expected one of %v", name, StandardLayoutNames())
	}
	return LoadLayout(name, text)
}

func StandardLayoutNames() []string {
	names := make([]string, 0, len(standardLayouts))
	for name := range standardLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
