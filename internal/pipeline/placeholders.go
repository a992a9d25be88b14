package pipeline

// PlaceholderMarkdown is the document shown before the first generation.
const PlaceholderMarkdown = `# Hi there, I'm [Your Name] 👋

## 🚀 About Me
I'm a passionate developer...

## 🛠️ Skills
- JavaScript
- React
- Node.js

## 🔗 Connect with me
[LinkedIn](https://linkedin.com)
[Twitter](https://twitter.com)

## 📊 GitHub Stats
![Your GitHub Stats](https://github-readme-stats.vercel.app/api?username=your_username&show_icons=true&theme=radical)
`

// ErrorMarkdown replaces the preview content when a generation fails. The
// specific failure message travels separately.
const ErrorMarkdown = `# Oops! Something went wrong.

There was an error generating your README. Please check your inputs or try again later.

If the problem persists, please check the server logs for more details.
`
