package config

// ExampleJSON is the starter step file written by 'ccinit init'. It
// shows both step variants and the two expansion token forms.
const ExampleJSON = `{
  "steps": [
    {
      "name": "Create the projects directory?",
      "command": "mkdir",
      "args": ["-p", "${HOME}/projects"],
      "default": "y"
    },
    {
      "selection": "Which MCP servers should be added?",
      "command": "claude",
      "args": ["mcp", "add"],
      "options": [
        {"name": "serena", "args": ["serena"], "default": true},
        {"name": "context7", "args": ["context7"]}
      ]
    }
  ]
}
`
