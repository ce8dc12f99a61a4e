// Package loader compiles Lua-authored game content into engine values.
// Authors declare regions, rooms, items, characters, and dialogue; the
// loader converts the declarations to plain Go data, validates
// references, and builds a fresh Game on demand. The Lua VM is discarded
// after loading — zero Lua at runtime.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// Load reads all .lua files from dir, executes them in a sandboxed VM,
// validates the collected declarations, and returns a Blueprint that can
// build Game instances.
func Load(dir string) (*Blueprint, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading game directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	luaFiles = sortedLuaFiles(luaFiles)

	coll := &collector{}
	L := newVM(coll)
	defer L.Close()

	for _, f := range luaFiles {
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	return finish(coll)
}

// LoadString executes a single chunk of Lua content. Used by tests and
// embedded games.
func LoadString(content string) (*Blueprint, error) {
	coll := &collector{}
	L := newVM(coll)
	defer L.Close()

	if err := L.DoString(content); err != nil {
		return nil, fmt.Errorf("executing game content: %w", err)
	}
	return finish(coll)
}

func finish(coll *collector) (*Blueprint, error) {
	bp := &Blueprint{defs: coll.defs}
	if err := validate(&bp.defs); err != nil {
		return nil, err
	}
	return bp, nil
}

// newVM creates a sandboxed Lua state with the authoring API registered.
func newVM(coll *collector) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	// Open safe libs only.
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	sandbox(L)
	registerAPI(L, coll)
	return L
}

// sandbox removes globals that reach outside the VM.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
}

// sortedLuaFiles orders game.lua first, the rest alphabetically, so
// metadata is declared before the world that references it.
func sortedLuaFiles(files []string) []string {
	sort.Strings(files)
	for i, f := range files {
		if f == "game.lua" {
			return append([]string{f}, append(append([]string{}, files[:i]...), files[i+1:]...)...)
		}
	}
	return files
}
