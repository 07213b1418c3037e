package report

const styleSheet = `* { font-family: monospace; }
table { border-spacing: 0px; }
td.level, th.level { white-space: nowrap; text-align: center; min-width: 2em; padding: 0; }
.id, .frame, .name, .race, .class, .kind, .what { text-align: left; padding-right: 0.5em; }
.id, .race, .class { text-align: right; }
.name, .kind, .what { text-align: left; }
tr.covered { background: green; color: white; }
tr.uncovered { background: red; color: white; }
tr.unreachable { background: white; color: darkgray; }
td.covered.level { background: lightgreen; color: white; }
td.uncovered.level { background: pink; color: white; }
td.unreachable.level { background: white; color: darkgray; }`
