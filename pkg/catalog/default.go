package catalog

// 内置默认表的类别划分
const (
	CategorySource = "Source" // 通用编程语言源码
	CategoryWeb    = "Web"    // 前端/标记/样式
	CategoryScript = "Script" // 脚本
	CategoryData   = "Data"   // 数据/序列化格式
	CategoryConfig = "Config" // 配置文件
	CategoryDocs   = "Docs"   // 文档
	CategoryOther  = "Other"  // 兜底类别
)

// Default 返回内置默认目录表
// 外部目录表加载失败时由调用方替换使用，而不是中止运行
func Default() Catalog {
	return Catalog{
		entries: map[string]Entry{
			".go":  {Language: "Go", Category: CategorySource, Description: "Go source"},
			".js":  {Language: "JavaScript", Category: CategoryWeb, Description: "JavaScript source"},
			".ts":  {Language: "TypeScript", Category: CategoryWeb, Description: "TypeScript source"},
			".jsx": {Language: "JSX", Category: CategoryWeb, Description: "React JSX"},
			".tsx": {Language: "TSX", Category: CategoryWeb, Description: "React TSX"},
			".py":  {Language: "Python", Category: CategorySource, Description: "Python source"},
			".pyi": {Language: "Python", Category: CategorySource, Description: "Python stub"},

			".java": {Language: "Java", Category: CategorySource, Description: "Java source"},

			".c":   {Language: "C", Category: CategorySource, Description: "C source"},
			".cc":  {Language: "C++", Category: CategorySource, Description: "C++ source"},
			".cxx": {Language: "C++", Category: CategorySource, Description: "C++ source"},
			".cpp": {Language: "C++", Category: CategorySource, Description: "C++ source"},
			".h":   {Language: "C Header", Category: CategorySource, Description: "C header"},
			".hpp": {Language: "C++ Header", Category: CategorySource, Description: "C++ header"},

			".rs":    {Language: "Rust", Category: CategorySource, Description: "Rust source"},
			".rb":    {Language: "Ruby", Category: CategorySource, Description: "Ruby source"},
			".cs":    {Language: "C#", Category: CategorySource, Description: "C# source"},
			".swift": {Language: "Swift", Category: CategorySource, Description: "Swift source"},
			".kt":    {Language: "Kotlin", Category: CategorySource, Description: "Kotlin source"},
			".scala": {Language: "Scala", Category: CategorySource, Description: "Scala source"},

			".sh":   {Language: "Shell", Category: CategoryScript, Description: "Shell script"},
			".bash": {Language: "Shell", Category: CategoryScript, Description: "Bash script"},
			".zsh":  {Language: "Shell", Category: CategoryScript, Description: "Zsh script"},
			".fish": {Language: "Shell", Category: CategoryScript, Description: "Fish script"},
			".ps1":  {Language: "PowerShell", Category: CategoryScript, Description: "PowerShell script"},
			".bat":  {Language: "Batch", Category: CategoryScript, Description: "Windows batch"},
			".cmd":  {Language: "Batch", Category: CategoryScript, Description: "Windows batch"},

			".sql": {Language: "SQL", Category: CategoryData, Description: "SQL script"},

			".html":   {Language: "HTML", Category: CategoryWeb, Description: "HTML document"},
			".htm":    {Language: "HTML", Category: CategoryWeb, Description: "HTML document"},
			".xml":    {Language: "XML", Category: CategoryData, Description: "XML document"},
			".css":    {Language: "CSS", Category: CategoryWeb, Description: "Stylesheet"},
			".scss":   {Language: "SCSS", Category: CategoryWeb, Description: "Sass stylesheet"},
			".sass":   {Language: "SASS", Category: CategoryWeb, Description: "Sass stylesheet"},
			".less":   {Language: "LESS", Category: CategoryWeb, Description: "Less stylesheet"},
			".vue":    {Language: "Vue", Category: CategoryWeb, Description: "Vue component"},
			".svelte": {Language: "Svelte", Category: CategoryWeb, Description: "Svelte component"},

			".yml":  {Language: "YAML", Category: CategoryConfig, Description: "YAML document"},
			".yaml": {Language: "YAML", Category: CategoryConfig, Description: "YAML document"},
			".json": {Language: "JSON", Category: CategoryData, Description: "JSON document"},
			".toml": {Language: "TOML", Category: CategoryConfig, Description: "TOML document"},
			".ini":  {Language: "INI", Category: CategoryConfig, Description: "INI config"},
			".cfg":  {Language: "INI", Category: CategoryConfig, Description: "Config file"},
			".conf": {Language: "INI", Category: CategoryConfig, Description: "Config file"},
			".csv":  {Language: "CSV", Category: CategoryData, Description: "Comma separated values"},

			".md":  {Language: "Markdown", Category: CategoryDocs, Description: "Markdown document"},
			".txt": {Language: "Text", Category: CategoryDocs, Description: "Plain text"},
		},
		defaultExcludes: DefaultExcludePatterns(),
	}
}

// DefaultExcludePatterns 内置默认排除模式
// 覆盖常见的临时文件、版本控制目录与构建产物
func DefaultExcludePatterns() []string {
	return []string{
		"*.tmp",
		"*.log",
		"*~",
		".git",
		".svn",
		"node_modules",
		"vendor",
		"bin",
		"obj",
		"dist",
	}
}
