// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import "sort"

// Pack is an operator set keyed by operator name, sigil included.
// Packs are merged into a registry at engine construction.
type Pack map[string]Operator

// registry is the assembled name-to-operator lookup for one engine
// instance. It is built once at construction and never mutated again,
// so concurrent Apply calls need no coordination.
type registry struct {
	ops map[string]Operator

	// names preserves registration order for suggestions and
	// introspection. Within a pack, names merge in sorted order so the
	// same configuration always yields the same listing. LiteralOperator
	// is always last.
	names []string
}

// newRegistry assembles the final operator table. Merge order, later
// wins: base pack (unless skipped), each extra pack in order, then
// custom operators. Exclusions are applied after merging and silently
// ignore unknown names. The literal-escape operator is injected last,
// after exclusions, so it is immune to both override and exclusion.
func newRegistry(opts Options) *registry {
	r := &registry{ops: make(map[string]Operator)}

	if !opts.SkipBase && opts.Base != nil {
		r.merge(opts.Base)
	}
	for _, pack := range opts.Packs {
		r.merge(pack)
	}
	if opts.Custom != nil {
		r.merge(opts.Custom)
	}
	for _, name := range opts.Exclude {
		r.remove(name)
	}

	r.remove(LiteralOperator)
	r.put(LiteralOperator, literalOperator)

	return r
}

// literalOperator returns its operand verbatim. The evaluator never
// recurses into it, which is what makes {"$literal": v} opaque.
func literalOperator(operand, _ any, _ *Context) (any, error) {
	return operand, nil
}

func (r *registry) merge(pack Pack) {
	names := make([]string, 0, len(pack))
	for name := range pack {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r.put(name, pack[name])
	}
}

func (r *registry) put(name string, op Operator) {
	if _, exists := r.ops[name]; !exists {
		r.names = append(r.names, name)
	}
	r.ops[name] = op
}

func (r *registry) remove(name string) {
	if _, exists := r.ops[name]; !exists {
		return
	}
	delete(r.ops, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
}

func (r *registry) lookup(name string) (Operator, bool) {
	op, ok := r.ops[name]
	return op, ok
}
